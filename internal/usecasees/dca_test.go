package usecasees

import (
	"database/sql"
	"net/http"
	"sync"
	"testing"
	"time"

	"swaphub/internal/controllers"
	ctrlMocks "swaphub/internal/controllers/mocks"
	pgMocks "swaphub/internal/repository/postgres/mocks"
	"swaphub/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTracker struct {
	mu     sync.Mutex
	orders []string
}

func (f *fakeTracker) Track(orderID, userID string, createdAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.orders = append(f.orders, orderID)

	return nil
}

func (f *fakeTracker) tracked() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.orders...)
}

type dcaMocks struct {
	shiftCtrl *ctrlMocks.SideShiftCtrl
	planRepo  *pgMocks.DCAPlanRepo
	userRepo  *pgMocks.UserRepo
	tracker   *fakeTracker
}

func newDCAMocks() *dcaMocks {
	return &dcaMocks{
		shiftCtrl: &ctrlMocks.SideShiftCtrl{},
		planRepo:  &pgMocks.DCAPlanRepo{},
		userRepo:  &pgMocks.UserRepo{},
		tracker:   &fakeTracker{},
	}
}

func (m *dcaMocks) newUseCase() *dcaUseCase {
	return NewDCAUseCase(
		m.shiftCtrl,
		m.planRepo,
		m.userRepo,
		m.tracker,
		time.Minute,
		5*time.Minute,
		10*time.Minute,
		nil,
		logrus.New(),
		noopPromTail{},
	)
}

func duePlan() models.DCAPlan {
	return models.DCAPlan{
		ID:            "plan-1",
		UserID:        "user-1",
		FromAsset:     "USDC",
		FromNetwork:   "ethereum",
		ToAsset:       "BTC",
		ToNetwork:     "bitcoin",
		Amount:        decimal.RequireFromString("100"),
		IntervalHours: 24,
	}
}

func userWithAddress() *models.User {
	return &models.User{
		ID:            "user-1",
		SettleAddress: sql.NullString{String: "bc1qexample", Valid: true},
	}
}

func Test_DCAExecution(t *testing.T) {
	mocks := newDCAMocks()
	now := time.Now()
	plan := duePlan()

	mocks.planRepo.On("ClaimDue", now, 10*time.Minute).Return([]models.DCAPlan{plan}, nil)
	mocks.userRepo.On("GetByID", "user-1").Return(userWithAddress(), nil)

	mocks.shiftCtrl.On("GetQuote", "USDC", "ethereum", "BTC", "bitcoin", plan.Amount).Return(&controllers.Quote{
		ID:           "q-1",
		SettleAmount: decimal.RequireFromString("0.0031"),
	}, nil)
	mocks.shiftCtrl.On("CreateOrder", "q-1", "bc1qexample", "").Return(&controllers.ShiftOrder{
		ID:             "shift-1",
		DepositAddress: "0xdeposit",
	}, nil)

	mocks.planRepo.On("CompleteExecution",
		mock.MatchedBy(func(p *models.DCAPlan) bool { return p.ID == "plan-1" }),
		mock.MatchedBy(func(o *models.Order) bool {
			return o.SideShiftOrderID == "shift-1" && o.Status == models.OrderStatusPending
		}),
		now.Add(24*time.Hour),
	).Return(nil)

	u := mocks.newUseCase()

	require.NoError(t, u.ProcessDue(now))

	assert.Equal(t, []string{"shift-1"}, mocks.tracker.tracked())
}

func Test_DCANoSettleAddress(t *testing.T) {
	mocks := newDCAMocks()
	now := time.Now()
	plan := duePlan()

	mocks.planRepo.On("ClaimDue", now, 10*time.Minute).Return([]models.DCAPlan{plan}, nil)
	mocks.userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	// Released straight to the next interval, not the retry delay.
	mocks.planRepo.On("Reschedule", "plan-1", now.Add(24*time.Hour)).Return(nil)

	u := mocks.newUseCase()

	require.NoError(t, u.ProcessDue(now))

	assert.Empty(t, mocks.tracker.tracked())
	mocks.shiftCtrl.AssertNotCalled(t, "GetQuote", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_DCAQuoteFailureRetries(t *testing.T) {
	mocks := newDCAMocks()
	now := time.Now()
	plan := duePlan()

	mocks.planRepo.On("ClaimDue", now, 10*time.Minute).Return([]models.DCAPlan{plan}, nil)
	mocks.userRepo.On("GetByID", "user-1").Return(userWithAddress(), nil)

	mocks.shiftCtrl.On("GetQuote", "USDC", "ethereum", "BTC", "bitcoin", plan.Amount).Return(nil, &controllers.APIError{
		HTTPStatus: http.StatusServiceUnavailable,
	})

	mocks.planRepo.On("Reschedule", "plan-1", now.Add(5*time.Minute)).Return(nil)

	u := mocks.newUseCase()

	require.NoError(t, u.ProcessDue(now))

	assert.Empty(t, mocks.tracker.tracked())
	mocks.planRepo.AssertNotCalled(t, "CompleteExecution", mock.Anything, mock.Anything, mock.Anything)
}
