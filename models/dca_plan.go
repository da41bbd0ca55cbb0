package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DCAPlan struct {
	ID              string          `db:"id" json:"id"`
	UserID          string          `db:"user_id" json:"userId"`
	FromAsset       string          `db:"from_asset" json:"fromAsset"`
	FromNetwork     string          `db:"from_network" json:"fromNetwork"`
	ToAsset         string          `db:"to_asset" json:"toAsset"`
	ToNetwork       string          `db:"to_network" json:"toNetwork"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
	IntervalHours   int             `db:"interval_hours" json:"intervalHours"`
	NextExecutionAt time.Time       `db:"next_execution_at" json:"nextExecutionAt"`
	IsActive        bool            `db:"is_active" json:"isActive"`
	ExecutedCount   int             `db:"executed_count" json:"executedCount"`
	CreatedAt       time.Time       `db:"created_at" json:"createdAt"`
}

func (p *DCAPlan) Interval() time.Duration {
	return time.Duration(p.IntervalHours) * time.Hour
}
