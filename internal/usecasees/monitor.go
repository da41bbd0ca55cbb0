package usecasees

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math/rand"
	"runtime/debug"
	"sync"
	"time"

	"swaphub/internal/controllers"
	"swaphub/internal/repository/postgres"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PromTail is the slice of the promtail client the usecases ship logs with.
type PromTail interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

const (
	defaultMonitorTick    = 10 * time.Second
	defaultMaxConcurrent  = 5
	defaultRateLimitPause = 60 * time.Second
	resumeJitterMax       = 5 * time.Second

	eventQueueSize = 256

	reconcileCronSpec = "0 * * * *"
)

// OrderTracker is the capability handed to order producers (DCA scheduler,
// limit worker, swap pipeline) so they never hold the monitor itself.
type OrderTracker interface {
	Track(orderID, userID string, createdAt time.Time) error
}

type Listener func(userID, orderID, oldStatus, newStatus string, snapshot *controllers.ShiftStatus)

type transitionEvent struct {
	userID    string
	orderID   string
	oldStatus string
	newStatus string
	snapshot  *controllers.ShiftStatus
}

type trackedOrder struct {
	userID      string
	createdAt   time.Time
	lastStatus  string
	lastChecked time.Time
}

type orderMonitorUseCase struct {
	shiftCtrl controllers.SideShiftCtrl

	orderRepo     postgres.OrderRepo
	watchedRepo   postgres.WatchedOrderRepo
	statusLogRepo postgres.StatusLogRepo

	tickInterval  time.Duration
	maxConcurrent int

	mu          sync.Mutex
	tracked     map[string]*trackedOrder
	listeners   []Listener
	pausedUntil time.Time

	events     chan transitionEvent
	sem        chan struct{}
	done       chan bool
	pollWg     sync.WaitGroup
	dispatchWg sync.WaitGroup
	started    bool

	cron *cron.Cron

	metrics map[structs.MetricConst]prometheus.Counter

	logRus   *logrus.Logger
	promTail PromTail
}

func NewOrderMonitorUseCase(
	shiftCtrl controllers.SideShiftCtrl,
	orderRepo postgres.OrderRepo,
	watchedRepo postgres.WatchedOrderRepo,
	statusLogRepo postgres.StatusLogRepo,
	tickInterval time.Duration,
	maxConcurrent int,
	metrics map[structs.MetricConst]prometheus.Counter,
	logRus *logrus.Logger,
	promTail PromTail,
) *orderMonitorUseCase {
	if tickInterval <= 0 {
		tickInterval = defaultMonitorTick
	}

	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}

	return &orderMonitorUseCase{
		shiftCtrl:     shiftCtrl,
		orderRepo:     orderRepo,
		watchedRepo:   watchedRepo,
		statusLogRepo: statusLogRepo,
		tickInterval:  tickInterval,
		maxConcurrent: maxConcurrent,
		tracked:       map[string]*trackedOrder{},
		events:        make(chan transitionEvent, eventQueueSize),
		sem:           make(chan struct{}, maxConcurrent),
		done:          make(chan bool),
		metrics:       metrics,
		logRus:        logRus,
		promTail:      promTail,
	}
}

// Track registers an order for monitoring. The watched row insert is
// on-conflict-do-nothing, so repeated calls are idempotent.
func (u *orderMonitorUseCase) Track(orderID, userID string, createdAt time.Time) error {
	if err := u.watchedRepo.StoreIdempotent(&models.WatchedOrder{
		SideShiftOrderID: orderID,
		UserID:           userID,
		LastStatus:       models.OrderStatusPending,
		CreatedAt:        createdAt,
	}); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.tracked[orderID]; !ok {
		u.tracked[orderID] = &trackedOrder{
			userID:     userID,
			createdAt:  createdAt,
			lastStatus: models.OrderStatusPending,
		}
	}

	return nil
}

// Untrack drops the order from memory only; persisted rows stay.
func (u *orderMonitorUseCase) Untrack(orderID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	delete(u.tracked, orderID)
}

func (u *orderMonitorUseCase) Tracked(orderID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	_, ok := u.tracked[orderID]

	return ok
}

func (u *orderMonitorUseCase) TrackedCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.tracked)
}

func (u *orderMonitorUseCase) Subscribe(l Listener) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.listeners = append(u.listeners, l)
}

// LoadPending seeds the in-memory set from every non-terminal order and
// watched row. Already-tracked orders are left untouched, so the call is
// idempotent.
func (u *orderMonitorUseCase) LoadPending() error {
	orders, err := u.orderRepo.GetNonTerminal()
	if err != nil {
		return err
	}

	watched, err := u.watchedRepo.GetPending()
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range orders {
		o := &orders[i]

		if _, ok := u.tracked[o.SideShiftOrderID]; ok {
			continue
		}

		u.tracked[o.SideShiftOrderID] = &trackedOrder{
			userID:     o.UserID,
			createdAt:  o.CreatedAt,
			lastStatus: o.Status,
		}
	}

	for i := range watched {
		w := &watched[i]

		if _, ok := u.tracked[w.SideShiftOrderID]; ok {
			continue
		}

		u.tracked[w.SideShiftOrderID] = &trackedOrder{
			userID:     w.UserID,
			createdAt:  w.CreatedAt,
			lastStatus: w.LastStatus,
		}
	}

	return nil
}

func (u *orderMonitorUseCase) Start() error {
	u.mu.Lock()

	if u.started {
		u.mu.Unlock()
		return nil
	}

	u.started = true
	u.mu.Unlock()

	if err := u.LoadPending(); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}

	u.dispatchWg.Add(1)
	go u.dispatchLoop()

	u.cron = cron.New()
	if _, err := u.cron.AddFunc(reconcileCronSpec, func() {
		if err := u.Reconcile(); err != nil {
			u.logRus.
				WithError(err).
				Error(string(debug.Stack()))
		}
	}); err != nil {
		return err
	}
	u.cron.Start()

	ticker := time.NewTicker(u.tickInterval)

	go func() {
		for {
			select {
			case <-u.done:
				ticker.Stop()
				return
			case <-ticker.C:
				u.processTick(time.Now())
			}
		}
	}()

	return nil
}

func (u *orderMonitorUseCase) Stop() {
	u.mu.Lock()

	if !u.started {
		u.mu.Unlock()
		return
	}

	u.started = false
	u.mu.Unlock()

	close(u.done)

	if u.cron != nil {
		<-u.cron.Stop().Done()
	}

	u.pollWg.Wait()

	close(u.events)
	u.dispatchWg.Wait()
}

// Reconcile re-reads persisted pending orders and force-polls every tracked
// order once, ignoring per-order cadence. Per-order failures are absorbed.
func (u *orderMonitorUseCase) Reconcile() error {
	if err := u.LoadPending(); err != nil {
		return err
	}

	for _, orderID := range u.trackedIDs() {
		u.pollOrder(orderID, time.Now())
	}

	return nil
}

func (u *orderMonitorUseCase) trackedIDs() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	ids := make([]string, 0, len(u.tracked))
	for id := range u.tracked {
		ids = append(ids, id)
	}

	return ids
}

// pollInterval widens with order age so fresh orders poll tightly and old
// ones back off.
func pollInterval(age time.Duration) time.Duration {
	switch {
	case age < 5*time.Minute:
		return 15 * time.Second
	case age < 30*time.Minute:
		return time.Minute
	case age < 2*time.Hour:
		return 5 * time.Minute
	default:
		return 15 * time.Minute
	}
}

func (u *orderMonitorUseCase) processTick(now time.Time) {
	u.mu.Lock()

	if now.Before(u.pausedUntil) {
		u.mu.Unlock()
		return
	}

	var due []string

	for id, t := range u.tracked {
		if now.Sub(t.lastChecked) >= pollInterval(now.Sub(t.createdAt)) {
			due = append(due, id)
		}
	}

	u.mu.Unlock()

	for _, orderID := range due {
		u.sem <- struct{}{}
		u.pollWg.Add(1)

		go func(orderID string) {
			defer func() {
				<-u.sem
				u.pollWg.Done()
			}()

			u.pollOrder(orderID, time.Now())
		}(orderID)
	}
}

func (u *orderMonitorUseCase) pollOrder(orderID string, now time.Time) {
	u.mu.Lock()
	t, ok := u.tracked[orderID]
	if !ok || now.Before(u.pausedUntil) {
		u.mu.Unlock()
		return
	}
	userID, oldStatus := t.userID, t.lastStatus
	u.mu.Unlock()

	u.count(structs.MetricPollTotal)

	snapshot, err := u.shiftCtrl.GetOrderStatus(orderID)
	if err != nil {
		if apiErr, ok := controllers.AsAPIError(err); ok && apiErr.RateLimited() {
			u.pause(now, apiErr.RetryAfter)
			return
		}

		u.logRus.
			WithError(err).
			WithField("orderID", orderID).
			Warn("poll failed")

		return
	}

	u.mu.Lock()
	if t, ok := u.tracked[orderID]; ok {
		t.lastChecked = now
	}
	u.mu.Unlock()

	if snapshot.Status == oldStatus {
		return
	}

	if err := u.persistTransition(orderID, oldStatus, snapshot, now); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
		u.promTail.Errorf("monitor: persist %s: %+v", orderID, err)

		// The aggregator stays the source of truth; the unchanged in-memory
		// status forces a re-persist on the next tick.
		return
	}

	u.mu.Lock()
	if t, ok := u.tracked[orderID]; ok {
		t.lastStatus = snapshot.Status
	}
	u.mu.Unlock()

	u.count(structs.MetricTransitionTotal)

	u.emit(transitionEvent{
		userID:    userID,
		orderID:   orderID,
		oldStatus: oldStatus,
		newStatus: snapshot.Status,
		snapshot:  snapshot,
	})

	if models.IsTerminalStatus(snapshot.Status) {
		u.Untrack(orderID)

		if snapshot.Status == models.OrderStatusSettled {
			u.count(structs.MetricOrderSettled)
		}
	}
}

func (u *orderMonitorUseCase) persistTransition(orderID, oldStatus string, snapshot *controllers.ShiftStatus, now time.Time) error {
	if err := u.statusLogRepo.Append(&models.StatusLog{
		SideShiftOrderID: orderID,
		OldStatus:        oldStatus,
		NewStatus:        snapshot.Status,
		Fingerprint:      fingerprint(snapshot),
		EmittedAt:        now,
	}); err != nil {
		return err
	}

	if err := u.orderRepo.SetStatus(orderID, snapshot.Status); err != nil {
		return err
	}

	if err := u.watchedRepo.SetStatus(orderID, snapshot.Status); err != nil {
		return err
	}

	return nil
}

// pause blocks all polling process-wide. The 0-5s jitter spreads the first
// batch after resumption across instances.
func (u *orderMonitorUseCase) pause(now time.Time, retryAfterSec int) {
	wait := defaultRateLimitPause
	if retryAfterSec > 0 {
		wait = time.Duration(retryAfterSec) * time.Second
	}

	jitter := time.Duration(rand.Int63n(int64(resumeJitterMax)))

	u.mu.Lock()
	u.pausedUntil = now.Add(wait + jitter)
	u.mu.Unlock()

	u.count(structs.MetricRateLimitPause)

	u.logRus.
		WithField("pause", wait.String()).
		Warn("rate limited, polling paused")
}

func (u *orderMonitorUseCase) PausedUntil() time.Time {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.pausedUntil
}

func (u *orderMonitorUseCase) emit(ev transitionEvent) {
	select {
	case u.events <- ev:
	default:
		u.logRus.
			WithField("orderID", ev.orderID).
			Warn("listener queue full, event dropped")
	}
}

func (u *orderMonitorUseCase) dispatchLoop() {
	defer u.dispatchWg.Done()

	for ev := range u.events {
		u.mu.Lock()
		listeners := make([]Listener, len(u.listeners))
		copy(listeners, u.listeners)
		u.mu.Unlock()

		for _, l := range listeners {
			u.invoke(l, ev)
		}
	}
}

// invoke shields the dispatch loop from listener panics.
func (u *orderMonitorUseCase) invoke(l Listener, ev transitionEvent) {
	defer func() {
		if r := recover(); r != nil {
			u.logRus.
				WithField("orderID", ev.orderID).
				Errorf("listener panic: %v", r)
		}
	}()

	l(ev.userID, ev.orderID, ev.oldStatus, ev.newStatus, ev.snapshot)
}

func (u *orderMonitorUseCase) count(m structs.MetricConst) {
	if c, ok := u.metrics[m]; ok {
		c.Inc()
	}
}

func fingerprint(snapshot *controllers.ShiftStatus) string {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return ""
	}

	sum := sha256.Sum256(raw)

	return hex.EncodeToString(sum[:])
}
