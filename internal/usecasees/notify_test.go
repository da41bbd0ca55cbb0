package usecasees

import (
	"database/sql"
	"testing"

	ctrlMocks "swaphub/internal/controllers/mocks"
	pgMocks "swaphub/internal/repository/postgres/mocks"
	"swaphub/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func Test_NotifyDedupesTransitions(t *testing.T) {
	tgmCtrl := &ctrlMocks.TgmCtrl{}
	userRepo := &pgMocks.UserRepo{}
	watchedRepo := &pgMocks.WatchedOrderRepo{}

	userRepo.On("GetByID", "user-1").Return(&models.User{
		ID:             "user-1",
		TelegramChatID: sql.NullInt64{Int64: 42, Valid: true},
	}, nil)
	tgmCtrl.On("SendTo", int64(42), mock.Anything).Return(nil)

	u := NewNotifyUseCase(tgmCtrl, userRepo, watchedRepo, nil, logrus.New())

	// At-least-once delivery from the monitor: the same transition may be
	// observed again after a crash.
	u.OnTransition("user-1", "X1", "processing", "settled", nil)
	u.OnTransition("user-1", "X1", "processing", "settled", nil)

	tgmCtrl.AssertNumberOfCalls(t, "SendTo", 1)
}

func Test_NotifyFallsBackToOpsChannel(t *testing.T) {
	tgmCtrl := &ctrlMocks.TgmCtrl{}
	userRepo := &pgMocks.UserRepo{}
	watchedRepo := &pgMocks.WatchedOrderRepo{}

	userRepo.On("GetByID", "user-2").Return(&models.User{ID: "user-2"}, nil)
	tgmCtrl.On("Send", mock.Anything).Return(nil)

	u := NewNotifyUseCase(tgmCtrl, userRepo, watchedRepo, nil, logrus.New())

	u.OnTransition("user-2", "X2", "pending", "waiting", nil)

	tgmCtrl.AssertNumberOfCalls(t, "Send", 1)
	tgmCtrl.AssertNotCalled(t, "SendTo", mock.Anything, mock.Anything)
}
