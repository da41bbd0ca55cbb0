package usecasees

import (
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
	defaultDCATick          = time.Minute
	defaultDCARetryDelay    = 5 * time.Minute
	defaultDCAMaxProcessing = 10 * time.Minute
)

type dcaUseCase struct {
	shiftCtrl controllers.SideShiftCtrl

	planRepo postgres.DCAPlanRepo
	userRepo postgres.UserRepo

	tracker OrderTracker

	tickInterval  time.Duration
	retryDelay    time.Duration
	maxProcessing time.Duration

	done    chan bool
	started bool
	mu      sync.Mutex

	metrics map[structs.MetricConst]prometheus.Counter

	logRus   *logrus.Logger
	promTail PromTail
}

func NewDCAUseCase(
	shiftCtrl controllers.SideShiftCtrl,
	planRepo postgres.DCAPlanRepo,
	userRepo postgres.UserRepo,
	tracker OrderTracker,
	tickInterval time.Duration,
	retryDelay time.Duration,
	maxProcessing time.Duration,
	metrics map[structs.MetricConst]prometheus.Counter,
	logRus *logrus.Logger,
	promTail PromTail,
) *dcaUseCase {
	if tickInterval <= 0 {
		tickInterval = defaultDCATick
	}

	if retryDelay <= 0 {
		retryDelay = defaultDCARetryDelay
	}

	if maxProcessing <= 0 {
		maxProcessing = defaultDCAMaxProcessing
	}

	return &dcaUseCase{
		shiftCtrl:     shiftCtrl,
		planRepo:      planRepo,
		userRepo:      userRepo,
		tracker:       tracker,
		tickInterval:  tickInterval,
		retryDelay:    retryDelay,
		maxProcessing: maxProcessing,
		done:          make(chan bool),
		metrics:       metrics,
		logRus:        logRus,
		promTail:      promTail,
	}
}

func (u *dcaUseCase) Start() {
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
				if err := u.ProcessDue(time.Now()); err != nil {
					u.logRus.
						WithError(err).
						Error(string(debug.Stack()))
					u.promTail.Errorf("dca: %+v %s", err, debug.Stack())
				}
			}
		}
	}()
}

func (u *dcaUseCase) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.started {
		return
	}

	u.started = false
	close(u.done)
}

// ProcessDue claims every due plan via the skip-locked transaction and
// executes the claims concurrently. The claim itself holds the plans
// unreachable to peer instances until their sentinel elapses.
func (u *dcaUseCase) ProcessDue(now time.Time) error {
	plans, err := u.planRepo.ClaimDue(now, u.maxProcessing)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup

	for i := range plans {
		wg.Add(1)

		go func(plan models.DCAPlan) {
			defer wg.Done()

			u.executePlan(now, &plan)
		}(plans[i])
	}

	wg.Wait()

	return nil
}

func (u *dcaUseCase) executePlan(now time.Time, plan *models.DCAPlan) {
	log := u.logRus.WithField("planID", plan.ID)

	user, err := u.userRepo.GetByID(plan.UserID)
	if err != nil {
		log.WithError(err).Error(string(debug.Stack()))
		u.reschedule(plan.ID, now.Add(u.retryDelay))
		return
	}

	if !user.SettleAddress.Valid || user.SettleAddress.String == "" {
		log.Warn("user has no settlement address, skipping execution")
		u.reschedule(plan.ID, now.Add(plan.Interval()))
		return
	}

	quote, err := u.shiftCtrl.GetQuote(plan.FromAsset, plan.FromNetwork, plan.ToAsset, plan.ToNetwork, plan.Amount)
	if err != nil {
		log.WithError(err).Warn("quote failed, retrying later")
		u.reschedule(plan.ID, now.Add(u.retryDelay))
		return
	}

	refundAddress := ""
	if user.RefundAddress.Valid {
		refundAddress = user.RefundAddress.String
	}

	shift, err := u.shiftCtrl.CreateOrder(quote.ID, user.SettleAddress.String, refundAddress)
	if err != nil {
		log.WithError(err).Warn("order creation failed, retrying later")
		u.reschedule(plan.ID, now.Add(u.retryDelay))
		return
	}

	order := models.Order{
		ID:               uuid.NewString(),
		SideShiftOrderID: shift.ID,
		UserID:           plan.UserID,
		FromAsset:        plan.FromAsset,
		FromNetwork:      plan.FromNetwork,
		FromAmount:       plan.Amount,
		ToAsset:          plan.ToAsset,
		ToNetwork:        plan.ToNetwork,
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

	if err := u.planRepo.CompleteExecution(plan, &order, now.Add(plan.Interval())); err != nil {
		log.WithError(err).Error(string(debug.Stack()))
		u.promTail.Errorf("dca: complete %s: %+v", plan.ID, err)
		u.reschedule(plan.ID, now.Add(u.retryDelay))
		return
	}

	if err := u.tracker.Track(shift.ID, plan.UserID, now); err != nil {
		log.WithError(err).Error(string(debug.Stack()))
	}

	u.count(structs.MetricDCAExecution)
}

func (u *dcaUseCase) reschedule(planID string, at time.Time) {
	if err := u.planRepo.Reschedule(planID, at); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}
}

func (u *dcaUseCase) count(m structs.MetricConst) {
	if c, ok := u.metrics[m]; ok {
		c.Inc()
	}
}
