package usecasees

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"swaphub/internal/controllers"
	"swaphub/internal/repository/postgres"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultLimitTick         = 30 * time.Second
	defaultLimitMaxStaleness = 10 * time.Minute
	defaultLimitMaxRetries   = 5

	limitBackoffCap = 30 * time.Minute
)

// Notifier is the user-facing channel capability: the worker never talks to
// telegram directly.
type Notifier interface {
	NotifyUser(userID, text string) error
}

type limitOrderUseCase struct {
	shiftCtrl controllers.SideShiftCtrl

	limitRepo    postgres.LimitOrderRepo
	snapshotRepo postgres.PriceSnapshotRepo
	orderRepo    postgres.OrderRepo
	userRepo     postgres.UserRepo

	tracker  OrderTracker
	notifier Notifier

	tickInterval time.Duration
	maxStaleness time.Duration
	maxRetries   int

	done    chan bool
	started bool
	mu      sync.Mutex

	metrics map[structs.MetricConst]prometheus.Counter

	logRus   *logrus.Logger
	promTail PromTail
}

func NewLimitOrderUseCase(
	shiftCtrl controllers.SideShiftCtrl,
	limitRepo postgres.LimitOrderRepo,
	snapshotRepo postgres.PriceSnapshotRepo,
	orderRepo postgres.OrderRepo,
	userRepo postgres.UserRepo,
	tracker OrderTracker,
	notifier Notifier,
	tickInterval time.Duration,
	maxStaleness time.Duration,
	maxRetries int,
	metrics map[structs.MetricConst]prometheus.Counter,
	logRus *logrus.Logger,
	promTail PromTail,
) *limitOrderUseCase {
	if tickInterval <= 0 {
		tickInterval = defaultLimitTick
	}

	if maxStaleness <= 0 {
		maxStaleness = defaultLimitMaxStaleness
	}

	if maxRetries <= 0 {
		maxRetries = defaultLimitMaxRetries
	}

	return &limitOrderUseCase{
		shiftCtrl:    shiftCtrl,
		limitRepo:    limitRepo,
		snapshotRepo: snapshotRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
		tracker:      tracker,
		notifier:     notifier,
		tickInterval: tickInterval,
		maxStaleness: maxStaleness,
		maxRetries:   maxRetries,
		done:         make(chan bool),
		metrics:      metrics,
		logRus:       logRus,
		promTail:     promTail,
	}
}

func (u *limitOrderUseCase) Start() {
	u.mu.Lock()

	if u.started {
		u.mu.Unlock()
		return
	}

	u.started = true
	u.mu.Unlock()

	ticker := time.NewTicker(u.tickInterval)

	go func() {
		for {
			select {
			case <-u.done:
				ticker.Stop()
				return
			case <-ticker.C:
				u.ProcessTick(time.Now())
			}
		}
	}()
}

func (u *limitOrderUseCase) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.started {
		return
	}

	u.started = false
	close(u.done)
}

func (u *limitOrderUseCase) ProcessTick(now time.Time) {
	armed, err := u.limitRepo.GetArmed(now)
	if err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	for i := range armed {
		u.evaluate(now, &armed[i])
	}
}

func (u *limitOrderUseCase) evaluate(now time.Time, lo *models.LimitOrder) {
	log := u.logRus.WithField("limitOrderID", lo.ID)

	snapshot, err := u.snapshotRepo.Get(lo.RefAsset, lo.RefChain)
	if err != nil {
		log.WithError(err).Warn("no price snapshot, skipping")
		return
	}

	// Freshness or abstain: never decide on a snapshot older than maxStaleness.
	if now.Sub(snapshot.UpdatedAt) > u.maxStaleness {
		log.
			WithField("updatedAt", snapshot.UpdatedAt).
			Warn("price snapshot stale, abstaining")
		u.count(structs.MetricLimitStaleSkipped)
		return
	}

	var triggered bool

	switch lo.Condition {
	case models.LimitConditionAbove:
		triggered = snapshot.Price.GreaterThan(lo.TargetPrice)
	case models.LimitConditionBelow:
		triggered = snapshot.Price.LessThan(lo.TargetPrice)
	}

	if !triggered {
		return
	}

	if err := u.limitRepo.SetStatus(lo.ID, models.LimitStatusTriggered); err != nil {
		log.WithError(err).Error(string(debug.Stack()))
		return
	}

	u.execute(now, lo)
}

func (u *limitOrderUseCase) execute(now time.Time, lo *models.LimitOrder) {
	log := u.logRus.WithField("limitOrderID", lo.ID)

	user, err := u.userRepo.GetByID(lo.UserID)
	if err != nil {
		u.retry(now, lo, err)
		return
	}

	if !user.SettleAddress.Valid || user.SettleAddress.String == "" {
		u.kill(lo, "no settlement address on file")
		return
	}

	quote, err := u.shiftCtrl.GetQuote(lo.FromAsset, lo.FromNetwork, lo.ToAsset, lo.ToNetwork, lo.Amount)
	if err != nil {
		u.retry(now, lo, err)
		return
	}

	refundAddress := ""
	if user.RefundAddress.Valid {
		refundAddress = user.RefundAddress.String
	}

	shift, err := u.shiftCtrl.CreateOrder(quote.ID, user.SettleAddress.String, refundAddress)
	if err != nil {
		u.retry(now, lo, err)
		return
	}

	order := models.Order{
		ID:               uuid.NewString(),
		SideShiftOrderID: shift.ID,
		UserID:           lo.UserID,
		FromAsset:        lo.FromAsset,
		FromNetwork:      lo.FromNetwork,
		FromAmount:       lo.Amount,
		ToAsset:          lo.ToAsset,
		ToNetwork:        lo.ToNetwork,
		SettleAmount:     quote.SettleAmount,
		DepositAddress:   shift.DepositAddress,
		Status:           models.OrderStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if shift.DepositMemo != "" {
		order.DepositMemo.Valid = true
		order.DepositMemo.String = shift.DepositMemo
	}

	if err := u.orderRepo.StoreWithWatched(&order); err != nil {
		u.retry(now, lo, err)
		return
	}

	if err := u.limitRepo.SetStatus(lo.ID, models.LimitStatusExecuting); err != nil {
		log.WithError(err).Error(string(debug.Stack()))
	}

	if err := u.tracker.Track(shift.ID, lo.UserID, now); err != nil {
		log.WithError(err).Error(string(debug.Stack()))
	}

	u.count(structs.MetricLimitTriggered)
}

// retry re-arms the order with exponential backoff, or kills it once the
// retry budget is spent. Permanent upstream failures that a fresh quote
// cannot fix are killed immediately.
func (u *limitOrderUseCase) retry(now time.Time, lo *models.LimitOrder, cause error) {
	if apiErr, ok := controllers.AsAPIError(cause); ok && !apiErr.Transient() && apiErr.Class() != controllers.ClassRetryFreshQuote {
		u.kill(lo, cause.Error())
		return
	}

	retryCount := lo.RetryCount + 1

	if retryCount >= u.maxRetries {
		u.kill(lo, cause.Error())
		return
	}

	if err := u.limitRepo.SetRetry(lo.ID, retryCount, now.Add(backoffDelay(retryCount)), cause.Error()); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}
}

func (u *limitOrderUseCase) kill(lo *models.LimitOrder, lastError string) {
	if err := u.limitRepo.MarkDead(lo.ID, lastError); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	u.count(structs.MetricLimitDead)

	if err := u.notifier.NotifyUser(lo.UserID, fmt.Sprintf(
		"Limit order %s %s/%s could not be executed and was deactivated: %s",
		lo.Amount.String(), lo.FromAsset, lo.ToAsset, lastError,
	)); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}
}

func backoffDelay(retryCount int) time.Duration {
	d := time.Minute << (retryCount - 1)
	if d > limitBackoffCap {
		return limitBackoffCap
	}

	return d
}

func (u *limitOrderUseCase) count(m structs.MetricConst) {
	if c, ok := u.metrics[m]; ok {
		c.Inc()
	}
}
