package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	CoinActionGift   = "gift"
	CoinActionDeduct = "deduct"
	CoinActionReset  = "reset"
)

type CoinGiftLog struct {
	ID           string          `db:"id"`
	AdminID      string          `db:"admin_id"`
	TargetUserID string          `db:"target_user_id"`
	Action       string          `db:"action"`
	Amount       decimal.Decimal `db:"amount"`
	Note         sql.NullString  `db:"note"`
	CreatedAt    time.Time       `db:"created_at"`
}

type AdminAuditLog struct {
	ID           string         `db:"id"`
	AdminID      string         `db:"admin_id"`
	Action       string         `db:"action"`
	TargetUserID sql.NullString `db:"target_user_id"`
	Payload      string         `db:"payload"`
	CreatedAt    time.Time      `db:"created_at"`
}
