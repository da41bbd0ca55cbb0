package http

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterHTTPEndpoints(f *fiber.App, m *Middleware, h *Handler) {
	f.Get("/api/healthcheck", h.HealthCheck)

	authed := f.Group("api", m.Auth())
	authed.Get("/swap-history", h.SwapHistory)
	authed.Post("/intent", h.ProcessIntent)
	authed.Post("/chat/history", h.ChatHistoryAppend)
	authed.Get("/user/settings", h.UserSettings)

	admin := authed.Group("/admin", m.RequireAdmin())
	admin.Post("/coins/adjust", h.AdminCoinsAdjust)
	admin.Get("/coins/stats", h.AdminCoinsStats)
	admin.Post("/coins/gift-all", h.AdminCoinsGiftAll)
}
