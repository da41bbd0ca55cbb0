package usecasees

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"swaphub/internal/controllers"
	ctrlMocks "swaphub/internal/controllers/mocks"
	pgMocks "swaphub/internal/repository/postgres/mocks"
	"swaphub/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type noopPromTail struct{}

func (noopPromTail) Debugf(format string, args ...interface{}) {}
func (noopPromTail) Errorf(format string, args ...interface{}) {}

type monitorMocks struct {
	shiftCtrl     *ctrlMocks.SideShiftCtrl
	orderRepo     *pgMocks.OrderRepo
	watchedRepo   *pgMocks.WatchedOrderRepo
	statusLogRepo *pgMocks.StatusLogRepo
}

func newMonitorMocks() *monitorMocks {
	return &monitorMocks{
		shiftCtrl:     &ctrlMocks.SideShiftCtrl{},
		orderRepo:     &pgMocks.OrderRepo{},
		watchedRepo:   &pgMocks.WatchedOrderRepo{},
		statusLogRepo: &pgMocks.StatusLogRepo{},
	}
}

func (m *monitorMocks) newMonitor() *orderMonitorUseCase {
	return NewOrderMonitorUseCase(
		m.shiftCtrl,
		m.orderRepo,
		m.watchedRepo,
		m.statusLogRepo,
		10*time.Second,
		5,
		nil,
		logrus.New(),
		noopPromTail{},
	)
}

func Test_MonitorTrackIdempotence(t *testing.T) {
	mocks := newMonitorMocks()
	mocks.watchedRepo.On("StoreIdempotent", mock.Anything).Return(nil)

	u := mocks.newMonitor()
	now := time.Now()

	require.NoError(t, u.Track("X1", "user-1", now))
	require.NoError(t, u.Track("X1", "user-1", now))

	u.Untrack("X1")
	require.NoError(t, u.Track("X1", "user-1", now))

	assert.Equal(t, 1, u.TrackedCount())
	assert.True(t, u.Tracked("X1"))

	mocks.watchedRepo.AssertNumberOfCalls(t, "StoreIdempotent", 3)
}

func Test_MonitorLoadPendingIdempotence(t *testing.T) {
	mocks := newMonitorMocks()

	created := time.Now().Add(-time.Hour)

	mocks.orderRepo.On("GetNonTerminal").Return([]models.Order{{
		SideShiftOrderID: "O1",
		UserID:           "user-1",
		Status:           models.OrderStatusProcessing,
		CreatedAt:        created,
	}}, nil)
	mocks.watchedRepo.On("GetPending").Return([]models.WatchedOrder{{
		SideShiftOrderID: "O1",
		UserID:           "user-1",
		LastStatus:       models.OrderStatusProcessing,
		CreatedAt:        created,
	}, {
		SideShiftOrderID: "O2",
		UserID:           "user-2",
		LastStatus:       models.OrderStatusWaiting,
		CreatedAt:        created,
	}}, nil)

	u := mocks.newMonitor()

	require.NoError(t, u.LoadPending())
	require.NoError(t, u.LoadPending())

	assert.Equal(t, 2, u.TrackedCount())
	assert.True(t, u.Tracked("O1"))
	assert.True(t, u.Tracked("O2"))
}

func Test_MonitorTerminalTransition(t *testing.T) {
	mocks := newMonitorMocks()
	mocks.watchedRepo.On("StoreIdempotent", mock.Anything).Return(nil)

	mocks.shiftCtrl.On("GetOrderStatus", "X1").Return(&controllers.ShiftStatus{
		ID: "X1", Status: models.OrderStatusPending,
	}, nil).Once()
	mocks.shiftCtrl.On("GetOrderStatus", "X1").Return(&controllers.ShiftStatus{
		ID: "X1", Status: models.OrderStatusProcessing,
	}, nil).Once()
	mocks.shiftCtrl.On("GetOrderStatus", "X1").Return(&controllers.ShiftStatus{
		ID: "X1", Status: models.OrderStatusSettled,
	}, nil).Once()

	mocks.statusLogRepo.On("Append", mock.Anything).Return(nil)
	mocks.orderRepo.On("SetStatus", "X1", models.OrderStatusProcessing).Return(nil).Once()
	mocks.orderRepo.On("SetStatus", "X1", models.OrderStatusSettled).Return(nil).Once()
	mocks.watchedRepo.On("SetStatus", "X1", models.OrderStatusProcessing).Return(nil).Once()
	mocks.watchedRepo.On("SetStatus", "X1", models.OrderStatusSettled).Return(nil).Once()

	u := mocks.newMonitor()

	var mu sync.Mutex
	var transitions []string

	u.Subscribe(func(userID, orderID, oldStatus, newStatus string, _ *controllers.ShiftStatus) {
		mu.Lock()
		defer mu.Unlock()

		transitions = append(transitions, oldStatus+"->"+newStatus)
	})

	u.dispatchWg.Add(1)
	go u.dispatchLoop()

	require.NoError(t, u.Track("X1", "user-1", time.Now()))

	u.pollOrder("X1", time.Now())
	u.pollOrder("X1", time.Now())
	u.pollOrder("X1", time.Now())

	close(u.events)
	u.dispatchWg.Wait()

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []string{"pending->processing", "processing->settled"}, transitions)
	assert.False(t, u.Tracked("X1"))

	mocks.statusLogRepo.AssertNumberOfCalls(t, "Append", 2)
}

func Test_MonitorRateLimitPause(t *testing.T) {
	mocks := newMonitorMocks()
	mocks.watchedRepo.On("StoreIdempotent", mock.Anything).Return(nil)

	mocks.shiftCtrl.On("GetOrderStatus", "X1").Return(nil, &controllers.APIError{
		HTTPStatus: http.StatusTooManyRequests,
		RetryAfter: 30,
	}).Once()

	u := mocks.newMonitor()
	now := time.Now()

	require.NoError(t, u.Track("X1", "user-1", now))
	require.NoError(t, u.Track("X2", "user-2", now))

	u.pollOrder("X1", now)

	pausedUntil := u.PausedUntil()
	assert.True(t, pausedUntil.Sub(now) >= 30*time.Second)
	assert.True(t, pausedUntil.Sub(now) <= 35*time.Second)

	// Every tick inside the pause window short-circuits without issuing a
	// single request.
	u.processTick(now.Add(time.Second))
	u.pollOrder("X2", now.Add(time.Second))

	mocks.shiftCtrl.AssertNumberOfCalls(t, "GetOrderStatus", 1)
}

func Test_MonitorTransientFailureKeepsStatus(t *testing.T) {
	mocks := newMonitorMocks()
	mocks.watchedRepo.On("StoreIdempotent", mock.Anything).Return(nil)

	mocks.shiftCtrl.On("GetOrderStatus", "X1").Return(nil, errors.New("connection reset")).Once()
	mocks.shiftCtrl.On("GetOrderStatus", "X1").Return(&controllers.ShiftStatus{
		ID: "X1", Status: models.OrderStatusPending,
	}, nil).Once()

	u := mocks.newMonitor()

	require.NoError(t, u.Track("X1", "user-1", time.Now()))

	u.pollOrder("X1", time.Now())
	u.pollOrder("X1", time.Now())

	assert.True(t, u.Tracked("X1"))
}

func Test_MonitorPersistenceFailureRetries(t *testing.T) {
	mocks := newMonitorMocks()
	mocks.watchedRepo.On("StoreIdempotent", mock.Anything).Return(nil)

	mocks.shiftCtrl.On("GetOrderStatus", "X1").Return(&controllers.ShiftStatus{
		ID: "X1", Status: models.OrderStatusProcessing,
	}, nil)

	mocks.statusLogRepo.On("Append", mock.Anything).Return(errors.New("db down")).Once()
	mocks.statusLogRepo.On("Append", mock.Anything).Return(nil).Once()
	mocks.orderRepo.On("SetStatus", "X1", models.OrderStatusProcessing).Return(nil).Once()
	mocks.watchedRepo.On("SetStatus", "X1", models.OrderStatusProcessing).Return(nil).Once()

	u := mocks.newMonitor()

	require.NoError(t, u.Track("X1", "user-1", time.Now()))

	u.pollOrder("X1", time.Now())
	u.pollOrder("X1", time.Now())

	mocks.statusLogRepo.AssertNumberOfCalls(t, "Append", 2)
	mocks.orderRepo.AssertNumberOfCalls(t, "SetStatus", 1)
}

func Test_PollInterval(t *testing.T) {
	cases := []struct {
		age      time.Duration
		expected time.Duration
	}{
		{time.Minute, 15 * time.Second},
		{10 * time.Minute, time.Minute},
		{time.Hour, 5 * time.Minute},
		{3 * time.Hour, 15 * time.Minute},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, pollInterval(c.age))
	}
}
