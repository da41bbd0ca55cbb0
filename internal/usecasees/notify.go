package usecasees

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"swaphub/internal/controllers"
	"swaphub/internal/repository/postgres"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type notifyKey struct {
	orderID string
	status  string
}

// notifyUseCase delivers order transitions to users over telegram. Monitor
// delivery is at-least-once across crashes, so transitions are deduped by
// (orderID, newStatus) before sending.
type notifyUseCase struct {
	tgmCtrl controllers.TgmCtrl

	userRepo    postgres.UserRepo
	watchedRepo postgres.WatchedOrderRepo

	mu   sync.Mutex
	seen map[notifyKey]struct{}

	metrics map[structs.MetricConst]prometheus.Counter

	logRus *logrus.Logger
}

func NewNotifyUseCase(
	tgmCtrl controllers.TgmCtrl,
	userRepo postgres.UserRepo,
	watchedRepo postgres.WatchedOrderRepo,
	metrics map[structs.MetricConst]prometheus.Counter,
	logRus *logrus.Logger,
) *notifyUseCase {
	return &notifyUseCase{
		tgmCtrl:     tgmCtrl,
		userRepo:    userRepo,
		watchedRepo: watchedRepo,
		seen:        map[notifyKey]struct{}{},
		metrics:     metrics,
		logRus:      logRus,
	}
}

// OnTransition is the listener subscribed to the order monitor.
func (u *notifyUseCase) OnTransition(userID, orderID, oldStatus, newStatus string, _ *controllers.ShiftStatus) {
	u.mu.Lock()

	key := notifyKey{orderID: orderID, status: newStatus}
	if _, ok := u.seen[key]; ok {
		u.mu.Unlock()
		return
	}
	u.seen[key] = struct{}{}

	u.mu.Unlock()

	text := fmt.Sprintf("Order %s: %s → %s", orderID, oldStatus, newStatus)

	if models.IsTerminalStatus(newStatus) {
		text = fmt.Sprintf("Order %s finished: %s", orderID, newStatus)
	}

	if err := u.NotifyUser(userID, text); err != nil {
		u.logRus.
			WithError(err).
			WithField("orderID", orderID).
			Warn("notification failed")
	}

	u.count(structs.MetricNotificationsTotal)
}

// NotifyUser sends to the user's own chat when one is linked, otherwise to
// the operations channel.
func (u *notifyUseCase) NotifyUser(userID, text string) error {
	user, err := u.userRepo.GetByID(userID)
	if err == nil && user.TelegramChatID.Valid {
		return u.tgmCtrl.SendTo(user.TelegramChatID.Int64, text)
	}

	return u.tgmCtrl.Send(fmt.Sprintf("[user %s] %s", userID, text))
}

// CommandProcessor answers operator commands on the bot channel.
func (u *notifyUseCase) CommandProcessor() {
	for update := range u.tgmCtrl.GetUpdates() {
		if update.Message == nil {
			continue
		}

		if !u.tgmCtrl.CheckChatID(update.Message.Chat.ID) {
			continue
		}

		switch update.Message.Command() {
		case "ping":
			u.pingProc()
		case "pending":
			u.pendingProc()
		}
	}
}

func (u *notifyUseCase) pingProc() {
	if err := u.tgmCtrl.Send(fmt.Sprintf("PONG [ %s ]", time.Now().UTC().Format(time.RFC822))); err != nil {
		u.logRus.WithField("method", "pingProc").Debug(err)
	}
}

func (u *notifyUseCase) pendingProc() {
	watched, err := u.watchedRepo.GetPending()
	if err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	msg := fmt.Sprintf("[ Pending Orders ]\nTotal:\t%d\n", len(watched))

	byStatus := map[string]int{}
	for _, w := range watched {
		byStatus[w.LastStatus]++
	}

	for status, n := range byStatus {
		msg += fmt.Sprintf("%s:\t%d\n", status, n)
	}

	if err := u.tgmCtrl.Send(msg); err != nil {
		u.logRus.
			WithError(err).
			Error(string(debug.Stack()))
	}
}

func (u *notifyUseCase) count(m structs.MetricConst) {
	if c, ok := u.metrics[m]; ok {
		c.Inc()
	}
}
