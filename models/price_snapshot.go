package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PriceSnapshot struct {
	ID        string          `db:"id"`
	Asset     string          `db:"asset"`
	Chain     string          `db:"chain"`
	Price     decimal.Decimal `db:"price"`
	UpdatedAt time.Time       `db:"updated_at"`
	ExpiresAt time.Time       `db:"expires_at"`
}
