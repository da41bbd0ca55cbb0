package usecasees

import (
	"database/sql"
	"testing"

	"swaphub/internal/controllers"
	ctrlMocks "swaphub/internal/controllers/mocks"
	pgMocks "swaphub/internal/repository/postgres/mocks"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_CreateSwap(t *testing.T) {
	shiftCtrl := &ctrlMocks.SideShiftCtrl{}
	orderRepo := &pgMocks.OrderRepo{}
	userRepo := &pgMocks.UserRepo{}
	tracker := &fakeTracker{}

	amount := decimal.RequireFromString("0.5")

	userRepo.On("GetByID", "user-1").Return(&models.User{
		ID:            "user-1",
		SettleAddress: sql.NullString{String: "0xsettle", Valid: true},
		RefundAddress: sql.NullString{String: "bc1qrefund", Valid: true},
	}, nil)

	shiftCtrl.On("GetQuote", "BTC", "bitcoin", "ETH", "ethereum", amount).Return(&controllers.Quote{
		ID:           "q-1",
		SettleAmount: decimal.RequireFromString("8.2"),
	}, nil)
	shiftCtrl.On("CreateOrder", "q-1", "0xsettle", "bc1qrefund").Return(&controllers.ShiftOrder{
		ID:             "shift-3",
		DepositAddress: "bc1qdeposit",
		DepositMemo:    "memo-7",
	}, nil)

	orderRepo.On("StoreWithWatched", mock.MatchedBy(func(o *models.Order) bool {
		return o.SideShiftOrderID == "shift-3" &&
			o.DepositMemo.Valid && o.DepositMemo.String == "memo-7" &&
			o.SettleAmount.Equal(decimal.RequireFromString("8.2"))
	})).Return(nil)

	u := NewSwapUseCase(shiftCtrl, orderRepo, userRepo, tracker, logrus.New())

	order, err := u.CreateSwap("user-1", &structs.SwapIntent{
		FromAsset:   "BTC",
		FromNetwork: "bitcoin",
		ToAsset:     "ETH",
		ToNetwork:   "ethereum",
		Amount:      amount,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, []string{"shift-3"}, tracker.tracked())
}

func Test_CreateSwap_NoSettleAddress(t *testing.T) {
	shiftCtrl := &ctrlMocks.SideShiftCtrl{}
	orderRepo := &pgMocks.OrderRepo{}
	userRepo := &pgMocks.UserRepo{}

	userRepo.On("GetByID", "user-1").Return(&models.User{ID: "user-1"}, nil)

	u := NewSwapUseCase(shiftCtrl, orderRepo, userRepo, &fakeTracker{}, logrus.New())

	_, err := u.CreateSwap("user-1", &structs.SwapIntent{
		FromAsset:   "BTC",
		FromNetwork: "bitcoin",
		ToAsset:     "ETH",
		ToNetwork:   "ethereum",
		Amount:      decimal.RequireFromString("0.5"),
	})

	assert.ErrorIs(t, err, ErrNoSettleAddress)
	shiftCtrl.AssertNotCalled(t, "GetQuote", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
