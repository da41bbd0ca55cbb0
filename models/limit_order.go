package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	LimitConditionAbove = "above"
	LimitConditionBelow = "below"

	LimitStatusArmed     = "armed"
	LimitStatusTriggered = "triggered"
	LimitStatusExecuting = "executing"
	LimitStatusSettled   = "settled"
	LimitStatusFailed    = "failed"
	LimitStatusDead      = "dead"
)

type LimitOrder struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"userId"`
	FromAsset   string          `db:"from_asset" json:"fromAsset"`
	FromNetwork string          `db:"from_network" json:"fromNetwork"`
	ToAsset     string          `db:"to_asset" json:"toAsset"`
	ToNetwork   string          `db:"to_network" json:"toNetwork"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	TargetPrice decimal.Decimal `db:"target_price" json:"targetPrice"`
	Condition   string          `db:"condition" json:"condition"`
	RefAsset    string          `db:"ref_asset" json:"refAsset"`
	RefChain    string          `db:"ref_chain" json:"refChain"`
	Status      string          `db:"status" json:"status"`
	RetryCount  int             `db:"retry_count" json:"retryCount"`
	RetryAfter  sql.NullTime    `db:"retry_after" json:"retryAfter,omitempty"`
	LastError   sql.NullString  `db:"last_error" json:"lastError,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}
