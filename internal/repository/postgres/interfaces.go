package postgres

import (
	"time"

	"swaphub/models"

	"github.com/shopspring/decimal"
)

//go:generate mockery --case=snake --name=OrderRepo
//go:generate mockery --case=snake --name=WatchedOrderRepo
//go:generate mockery --case=snake --name=DCAPlanRepo
//go:generate mockery --case=snake --name=LimitOrderRepo
//go:generate mockery --case=snake --name=PriceSnapshotRepo
//go:generate mockery --case=snake --name=StatusLogRepo
//go:generate mockery --case=snake --name=UserRepo
//go:generate mockery --case=snake --name=CoinsRepo
//go:generate mockery --case=snake --name=ConversationRepo

type OrderRepo interface {
	StoreWithWatched(m *models.Order) error
	GetBySideShiftID(sideShiftOrderID string) (*models.Order, error)
	GetNonTerminal() ([]models.Order, error)
	GetHistory(userID string, limit int) ([]models.Order, error)
	SetStatus(sideShiftOrderID, status string) error
}

type WatchedOrderRepo interface {
	StoreIdempotent(m *models.WatchedOrder) error
	SetStatus(sideShiftOrderID, status string) error
	GetPending() ([]models.WatchedOrder, error)
}

type DCAPlanRepo interface {
	Store(m *models.DCAPlan) error
	GetByID(id string) (*models.DCAPlan, error)
	ClaimDue(now time.Time, maxProcessing time.Duration) ([]models.DCAPlan, error)
	Reschedule(id string, at time.Time) error
	CompleteExecution(plan *models.DCAPlan, order *models.Order, nextAt time.Time) error
}

type RefAsset struct {
	Asset string `db:"ref_asset"`
	Chain string `db:"ref_chain"`
}

type LimitOrderRepo interface {
	Store(m *models.LimitOrder) error
	GetByID(id string) (*models.LimitOrder, error)
	GetArmed(now time.Time) ([]models.LimitOrder, error)
	GetRefAssets() ([]RefAsset, error)
	SetStatus(id, status string) error
	SetRetry(id string, retryCount int, retryAfter time.Time, lastError string) error
	MarkDead(id, lastError string) error
}

type PriceSnapshotRepo interface {
	Upsert(m *models.PriceSnapshot) error
	Get(asset, chain string) (*models.PriceSnapshot, error)
}

type StatusLogRepo interface {
	Append(m *models.StatusLog) error
	GetByOrder(sideShiftOrderID string) ([]models.StatusLog, error)
}

type UserRepo interface {
	GetByID(id string) (*models.User, error)
	GetSettings(userID string) (*models.UserSettings, error)
}

type CoinsRepo interface {
	Adjust(adminID, targetUserID, action string, amount decimal.Decimal, note string) (*models.User, error)
	Stats() (*CoinStats, error)
	GiftAll(adminID string, amount decimal.Decimal, note string) (int, error)
}

type ConversationRepo interface {
	AppendMessage(userID, role, content string) (*models.ChatMessage, error)
	GetMessages(userID string, limit int) ([]models.ChatMessage, error)
}
