package usecasees

import (
	"testing"
	"time"

	"swaphub/internal/controllers"
	ctrlMocks "swaphub/internal/controllers/mocks"
	"swaphub/internal/repository/postgres"
	pgMocks "swaphub/internal/repository/postgres/mocks"
	"swaphub/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func Test_PriceRefresh(t *testing.T) {
	shiftCtrl := &ctrlMocks.SideShiftCtrl{}
	limitRepo := &pgMocks.LimitOrderRepo{}
	snapshotRepo := &pgMocks.PriceSnapshotRepo{}

	now := time.Now()

	limitRepo.On("GetRefAssets").Return([]postgres.RefAsset{{Asset: "ETH", Chain: "ethereum"}}, nil)
	shiftCtrl.On("GetPairRate", "ETH", "ethereum", "USDC", "ethereum").Return(&controllers.PairPrice{
		Rate: decimal.RequireFromString("1987.5"),
	}, nil)

	snapshotRepo.On("Upsert", mock.MatchedBy(func(s *models.PriceSnapshot) bool {
		return s.Asset == "ETH" && s.Chain == "ethereum" &&
			s.Price.Equal(decimal.RequireFromString("1987.5")) &&
			s.UpdatedAt.Equal(now) &&
			s.ExpiresAt.Equal(now.Add(10*time.Minute))
	})).Return(nil)

	u := NewPriceUseCase(shiftCtrl, limitRepo, snapshotRepo, time.Minute, 10*time.Minute, nil, logrus.New(), noopPromTail{})
	u.Refresh(now)

	snapshotRepo.AssertNumberOfCalls(t, "Upsert", 1)
}

func Test_PriceRefreshSkipsFailedPairs(t *testing.T) {
	shiftCtrl := &ctrlMocks.SideShiftCtrl{}
	limitRepo := &pgMocks.LimitOrderRepo{}
	snapshotRepo := &pgMocks.PriceSnapshotRepo{}

	now := time.Now()

	limitRepo.On("GetRefAssets").Return([]postgres.RefAsset{
		{Asset: "ETH", Chain: "ethereum"},
		{Asset: "BTC", Chain: "bitcoin"},
	}, nil)

	shiftCtrl.On("GetPairRate", "ETH", "ethereum", "USDC", "ethereum").Return(nil, assert.AnError)
	shiftCtrl.On("GetPairRate", "BTC", "bitcoin", "USDC", "ethereum").Return(&controllers.PairPrice{
		Rate: decimal.RequireFromString("64000"),
	}, nil)

	snapshotRepo.On("Upsert", mock.MatchedBy(func(s *models.PriceSnapshot) bool {
		return s.Asset == "BTC"
	})).Return(nil)

	u := NewPriceUseCase(shiftCtrl, limitRepo, snapshotRepo, time.Minute, 10*time.Minute, nil, logrus.New(), noopPromTail{})
	u.Refresh(now)

	snapshotRepo.AssertNumberOfCalls(t, "Upsert", 1)
}
