package usecasees

import (
	"time"

	"swaphub/internal/controllers"
	"swaphub/internal/repository/postgres"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNoSettleAddress = errors.New("user has no settlement address")

type swapUseCase struct {
	shiftCtrl controllers.SideShiftCtrl

	orderRepo postgres.OrderRepo
	userRepo  postgres.UserRepo

	tracker OrderTracker

	logRus *logrus.Logger
}

func NewSwapUseCase(
	shiftCtrl controllers.SideShiftCtrl,
	orderRepo postgres.OrderRepo,
	userRepo postgres.UserRepo,
	tracker OrderTracker,
	logRus *logrus.Logger,
) *swapUseCase {
	return &swapUseCase{
		shiftCtrl: shiftCtrl,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		tracker:   tracker,
		logRus:    logRus,
	}
}

// CreateSwap runs the quote, order creation, persistence and monitor
// registration for one structured swap intent.
func (u *swapUseCase) CreateSwap(userID string, intent *structs.SwapIntent) (*models.Order, error) {
	user, err := u.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if !user.SettleAddress.Valid || user.SettleAddress.String == "" {
		return nil, ErrNoSettleAddress
	}

	quote, err := u.shiftCtrl.GetQuote(intent.FromAsset, intent.FromNetwork, intent.ToAsset, intent.ToNetwork, intent.Amount)
	if err != nil {
		return nil, err
	}

	refundAddress := ""
	if user.RefundAddress.Valid {
		refundAddress = user.RefundAddress.String
	}

	shift, err := u.shiftCtrl.CreateOrder(quote.ID, user.SettleAddress.String, refundAddress)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	order := models.Order{
		ID:               uuid.NewString(),
		SideShiftOrderID: shift.ID,
		UserID:           userID,
		FromAsset:        intent.FromAsset,
		FromNetwork:      intent.FromNetwork,
		FromAmount:       intent.Amount,
		ToAsset:          intent.ToAsset,
		ToNetwork:        intent.ToNetwork,
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
		return nil, err
	}

	if err := u.tracker.Track(shift.ID, userID, now); err != nil {
		u.logRus.
			WithError(err).
			WithField("orderID", shift.ID).
			Error("monitor registration failed")
	}

	return &order, nil
}

func (u *swapUseCase) CreateCheckout(userID string, intent *structs.CheckoutIntent) (*controllers.Checkout, error) {
	user, err := u.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if !user.SettleAddress.Valid || user.SettleAddress.String == "" {
		return nil, ErrNoSettleAddress
	}

	return u.shiftCtrl.CreateCheckout(intent.ToAsset, intent.ToNetwork, user.SettleAddress.String, intent.Amount)
}
