package usecasees

import (
	"time"

	"swaphub/internal/repository/postgres"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrIntentUnsupported = errors.New("intent kind not supported")

const portfolioDefaultLimit = 50

type intentUseCase struct {
	swap *swapUseCase

	planRepo  postgres.DCAPlanRepo
	limitRepo postgres.LimitOrderRepo
	orderRepo postgres.OrderRepo

	logRus *logrus.Logger
}

func NewIntentUseCase(
	swap *swapUseCase,
	planRepo postgres.DCAPlanRepo,
	limitRepo postgres.LimitOrderRepo,
	orderRepo postgres.OrderRepo,
	logRus *logrus.Logger,
) *intentUseCase {
	return &intentUseCase{
		swap:      swap,
		planRepo:  planRepo,
		limitRepo: limitRepo,
		orderRepo: orderRepo,
		logRus:    logRus,
	}
}

// Process turns one validated intent into its side effect and returns the
// created resource. A portfolio intent returns the user's order history;
// yield_scout intents return ErrIntentUnsupported.
func (u *intentUseCase) Process(userID string, intent *structs.Intent) (interface{}, error) {
	now := time.Now().UTC()

	switch intent.Kind {
	case structs.IntentSwap:
		return u.swap.CreateSwap(userID, intent.Swap)

	case structs.IntentDCA:
		plan := models.DCAPlan{
			ID:              uuid.NewString(),
			UserID:          userID,
			FromAsset:       intent.DCA.FromAsset,
			FromNetwork:     intent.DCA.FromNetwork,
			ToAsset:         intent.DCA.ToAsset,
			ToNetwork:       intent.DCA.ToNetwork,
			Amount:          intent.DCA.Amount,
			IntervalHours:   intent.DCA.IntervalHours,
			NextExecutionAt: now,
			IsActive:        true,
			CreatedAt:       now,
		}

		if err := u.planRepo.Store(&plan); err != nil {
			return nil, err
		}

		return &plan, nil

	case structs.IntentLimitOrder:
		lo := models.LimitOrder{
			ID:          uuid.NewString(),
			UserID:      userID,
			FromAsset:   intent.LimitOrder.FromAsset,
			FromNetwork: intent.LimitOrder.FromNetwork,
			ToAsset:     intent.LimitOrder.ToAsset,
			ToNetwork:   intent.LimitOrder.ToNetwork,
			Amount:      intent.LimitOrder.Amount,
			TargetPrice: intent.LimitOrder.TargetPrice,
			Condition:   intent.LimitOrder.Condition,
			RefAsset:    intent.LimitOrder.RefAsset,
			RefChain:    intent.LimitOrder.RefChain,
			Status:      models.LimitStatusArmed,
			CreatedAt:   now,
		}

		if err := u.limitRepo.Store(&lo); err != nil {
			return nil, err
		}

		return &lo, nil

	case structs.IntentCheckout:
		return u.swap.CreateCheckout(userID, intent.Checkout)

	case structs.IntentPortfolio:
		limit := intent.Portfolio.Limit
		if limit <= 0 || limit > portfolioDefaultLimit {
			limit = portfolioDefaultLimit
		}

		return u.orderRepo.GetHistory(userID, limit)

	default:
		return nil, ErrIntentUnsupported
	}
}
