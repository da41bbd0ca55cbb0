package controllers

import (
	"github.com/shopspring/decimal"

	tgmBotAPI "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate mockery --case=snake --name=SideShiftCtrl
//go:generate mockery --case=snake --name=TgmCtrl

type SideShiftCtrl interface {
	GetQuote(fromAsset, fromNetwork, toAsset, toNetwork string, amount decimal.Decimal) (*Quote, error)
	CreateOrder(quoteID, settleAddress, refundAddress string) (*ShiftOrder, error)
	GetOrderStatus(orderID string) (*ShiftStatus, error)
	CreateCheckout(toAsset, toNetwork, settleAddress string, amount decimal.Decimal) (*Checkout, error)
	GetPairRate(fromAsset, fromNetwork, toAsset, toNetwork string) (*PairPrice, error)
}

type TgmCtrl interface {
	Send(text string) error
	SendTo(chatID int64, text string) error
	CheckChatID(chatID int64) bool
	Update(msgID int, text string) error
	GetUpdates() tgmBotAPI.UpdatesChannel
}
