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

const defaultPriceRefreshTick = time.Minute

// Snapshots are priced against USDC on ethereum, the platform's reference
// quote asset.
const (
	refQuoteAsset   = "USDC"
	refQuoteNetwork = "ethereum"
)

type priceUseCase struct {
	shiftCtrl controllers.SideShiftCtrl

	limitRepo    postgres.LimitOrderRepo
	snapshotRepo postgres.PriceSnapshotRepo

	tickInterval time.Duration
	snapshotTTL  time.Duration

	done    chan bool
	started bool
	mu      sync.Mutex

	metrics map[structs.MetricConst]prometheus.Counter

	logRus   *logrus.Logger
	promTail PromTail
}

func NewPriceUseCase(
	shiftCtrl controllers.SideShiftCtrl,
	limitRepo postgres.LimitOrderRepo,
	snapshotRepo postgres.PriceSnapshotRepo,
	tickInterval time.Duration,
	snapshotTTL time.Duration,
	metrics map[structs.MetricConst]prometheus.Counter,
	logRus *logrus.Logger,
	promTail PromTail,
) *priceUseCase {
	if tickInterval <= 0 {
		tickInterval = defaultPriceRefreshTick
	}

	if snapshotTTL <= 0 {
		snapshotTTL = defaultLimitMaxStaleness
	}

	return &priceUseCase{
		shiftCtrl:    shiftCtrl,
		limitRepo:    limitRepo,
		snapshotRepo: snapshotRepo,
		tickInterval: tickInterval,
		snapshotTTL:  snapshotTTL,
		done:         make(chan bool),
		metrics:      metrics,
		logRus:       logRus,
		promTail:     promTail,
	}
}

func (u *priceUseCase) Start() {
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
				u.Refresh(time.Now())
			}
		}
	}()
}

func (u *priceUseCase) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.started {
		return
	}

	u.started = false
	close(u.done)
}

// Refresh fetches a fresh rate for every asset some armed limit order
// watches and upserts the snapshot cache.
func (u *priceUseCase) Refresh(now time.Time) {
	refs, err := u.limitRepo.GetRefAssets()
	if err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	for _, ref := range refs {
		rate, err := u.shiftCtrl.GetPairRate(ref.Asset, ref.Chain, refQuoteAsset, refQuoteNetwork)
		if err != nil {
			u.logRus.
				WithError(err).
				WithField("asset", ref.Asset).
				Warn("price refresh failed")
			continue
		}

		if err := u.snapshotRepo.Upsert(&models.PriceSnapshot{
			ID:        uuid.NewString(),
			Asset:     ref.Asset,
			Chain:     ref.Chain,
			Price:     rate.Rate,
			UpdatedAt: now,
			ExpiresAt: now.Add(u.snapshotTTL),
		}); err != nil {
			u.logRus.
				WithError(err).
				Error(string(debug.Stack()))
			u.promTail.Errorf("price: upsert %s: %+v", ref.Asset, err)
			continue
		}

		u.count(structs.MetricPriceRefreshTotal)
	}
}

func (u *priceUseCase) count(m structs.MetricConst) {
	if c, ok := u.metrics[m]; ok {
		c.Inc()
	}
}
