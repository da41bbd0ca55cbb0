package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             string          `db:"id"`
	Role           string          `db:"role"`
	TelegramChatID sql.NullInt64   `db:"telegram_chat_id"`
	SettleAddress  sql.NullString  `db:"settle_address"`
	RefundAddress  sql.NullString  `db:"refund_address"`
	CoinBalance    decimal.Decimal `db:"coin_balance"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CreatedAt      time.Time       `db:"created_at"`
}

type UserSettings struct {
	UserID               string          `db:"user_id" json:"userId"`
	SlippageTolerance    decimal.Decimal `db:"slippage_tolerance" json:"slippageTolerance"`
	NotificationsEnabled bool            `db:"notifications_enabled" json:"notificationsEnabled"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updatedAt"`
}
