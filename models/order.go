package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusWaiting    = "waiting"
	OrderStatusProcessing = "processing"
	OrderStatusSettled    = "settled"
	OrderStatusExpired    = "expired"
	OrderStatusRefunded   = "refunded"
	OrderStatusFailed     = "failed"
)

type Order struct {
	ID               string          `db:"id" json:"id"`
	SideShiftOrderID string          `db:"sideshift_order_id" json:"sideshiftOrderId"`
	UserID           string          `db:"user_id" json:"userId"`
	FromAsset        string          `db:"from_asset" json:"fromAsset"`
	FromNetwork      string          `db:"from_network" json:"fromNetwork"`
	FromAmount       decimal.Decimal `db:"from_amount" json:"fromAmount"`
	ToAsset          string          `db:"to_asset" json:"toAsset"`
	ToNetwork        string          `db:"to_network" json:"toNetwork"`
	SettleAmount     decimal.Decimal `db:"settle_amount" json:"settleAmount"`
	DepositAddress   string          `db:"deposit_address" json:"depositAddress"`
	DepositMemo      sql.NullString  `db:"deposit_memo" json:"depositMemo,omitempty"`
	Status           string          `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
}

func IsTerminalStatus(status string) bool {
	switch status {
	case OrderStatusSettled, OrderStatusExpired, OrderStatusRefunded, OrderStatusFailed:
		return true
	}

	return false
}
