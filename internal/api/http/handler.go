package http

import (
	"swaphub/internal/repository/postgres"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	historyDefaultLimit = 20
	historyMaxLimit     = 100
)

type IntentProcessor interface {
	Process(userID string, intent *structs.Intent) (interface{}, error)
}

type Handler struct {
	fiber *fiber.App

	orderRepo postgres.OrderRepo
	userRepo  postgres.UserRepo
	coinsRepo postgres.CoinsRepo
	convRepo  postgres.ConversationRepo

	intents IntentProcessor

	logger *logrus.Logger
}

func NewHandler(
	f *fiber.App,
	orderRepo postgres.OrderRepo,
	userRepo postgres.UserRepo,
	coinsRepo postgres.CoinsRepo,
	convRepo postgres.ConversationRepo,
	intents IntentProcessor,
	l *logrus.Logger,
) *Handler {
	return &Handler{
		fiber:     f,
		orderRepo: orderRepo,
		userRepo:  userRepo,
		coinsRepo: coinsRepo,
		convRepo:  convRepo,
		intents:   intents,
		logger:    l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	return c.JSON(body)
}

func (h *Handler) SwapHistory(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return badRequest(c, "userId is required")
	}

	if !allowSelf(c, userID) {
		return forbidden(c)
	}

	limit := c.QueryInt("limit", historyDefaultLimit)
	if limit <= 0 || limit > historyMaxLimit {
		return badRequest(c, "limit out of range")
	}

	orders, err := h.orderRepo.GetHistory(userID, limit)
	if err != nil {
		h.logger.WithError(err).Error("swap history query failed")
		return internalError(c)
	}

	return c.JSON(fiber.Map{"orders": orders})
}

func (h *Handler) ChatHistoryAppend(c *fiber.Ctx) error {
	var body struct {
		UserID  string `json:"userId"`
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "malformed body")
	}

	if body.UserID == "" || body.Content == "" {
		return badRequest(c, "userId and content are required")
	}

	if !allowSelf(c, body.UserID) {
		return forbidden(c)
	}

	if body.Role == "" {
		body.Role = "user"
	}

	msg, err := h.convRepo.AppendMessage(body.UserID, body.Role, body.Content)
	if err != nil {
		h.logger.WithError(err).Error("chat append failed")
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *Handler) UserSettings(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return badRequest(c, "userId is required")
	}

	if !allowSelf(c, userID) {
		return forbidden(c)
	}

	settings, err := h.userRepo.GetSettings(userID)
	if err != nil {
		// Any lookup failure, including no stored row yet: respond with the defaults.
		settings = &models.UserSettings{
			UserID:            userID,
			SlippageTolerance: decimal.RequireFromString("0.0100"),
		}
	}

	return c.JSON(settings)
}

func (h *Handler) ProcessIntent(c *fiber.Ctx) error {
	intent, err := structs.ParseIntent(c.Body())
	if err != nil {
		if vErr, ok := err.(*structs.ValidationError); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":   "VALIDATION",
				"fields": vErr.Fields,
			})
		}

		return badRequest(c, "malformed intent")
	}

	out, err := h.intents.Process(authedUserID(c), intent)
	if err != nil {
		h.logger.WithError(err).Warn("intent processing failed")
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) AdminCoinsAdjust(c *fiber.Ctx) error {
	var body struct {
		TargetUserID string          `json:"targetUserId"`
		Action       string          `json:"action"`
		Amount       decimal.Decimal `json:"amount"`
		Note         string          `json:"note"`
	}

	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "malformed body")
	}

	if body.TargetUserID == "" {
		return badRequest(c, "targetUserId is required")
	}

	switch body.Action {
	case models.CoinActionGift, models.CoinActionDeduct:
		if !body.Amount.IsPositive() {
			return badRequest(c, "amount must be positive")
		}
	case models.CoinActionReset:
	default:
		return badRequest(c, "action must be gift, deduct or reset")
	}

	user, err := h.coinsRepo.Adjust(authedUserID(c), body.TargetUserID, body.Action, body.Amount, body.Note)
	if err != nil {
		if err == postgres.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"code":    "NOT_FOUND",
				"message": "user not found",
			})
		}

		h.logger.WithError(err).Error("coin adjust failed")
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"userId":  user.ID,
		"balance": user.CoinBalance,
	})
}

func (h *Handler) AdminCoinsStats(c *fiber.Ctx) error {
	stats, err := h.coinsRepo.Stats()
	if err != nil {
		h.logger.WithError(err).Error("coin stats failed")
		return internalError(c)
	}

	return c.JSON(stats)
}

func (h *Handler) AdminCoinsGiftAll(c *fiber.Ctx) error {
	var body struct {
		Amount decimal.Decimal `json:"amount"`
		Note   string          `json:"note"`
	}

	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "malformed body")
	}

	if !body.Amount.IsPositive() {
		return badRequest(c, "amount must be positive")
	}

	credited, err := h.coinsRepo.GiftAll(authedUserID(c), body.Amount, body.Note)
	if err != nil {
		h.logger.WithError(err).Error("gift-all failed")
		return internalError(c)
	}

	return c.JSON(fiber.Map{"usersCredited": credited})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    "BAD_REQUEST",
		"message": msg,
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "INTERNAL",
		"message": "internal error",
	})
}
