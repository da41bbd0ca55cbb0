package http

import (
	"strings"

	"swaphub/models"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	localUserID = "user_id"
	localRole   = "role"
)

type Middleware struct {
	fiber *fiber.App

	jwtSecret []byte
	issuer    string
}

func NewMiddleware(fiber *fiber.App, jwtSecret []byte, issuer string) *Middleware {
	return &Middleware{
		fiber:     fiber,
		jwtSecret: jwtSecret,
		issuer:    issuer,
	}
}

func (m *Middleware) UseMetrics() {
	prometheus := fiberprometheus.New("swaphub")
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies the bearer token issued by the identity provider and stores
// the caller identity on the request context.
func (m *Middleware) Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearer(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return unauthorized(c, "missing token")
		}

		parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrSignatureInvalid
			}

			return m.jwtSecret, nil
		}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
		if err != nil {
			return unauthorized(c, "invalid token")
		}

		cl, ok := parsed.Claims.(*claims)
		if !ok || cl.Subject == "" {
			return unauthorized(c, "invalid token")
		}

		c.Locals(localUserID, cl.Subject)
		c.Locals(localRole, cl.Role)

		return c.Next()
	}
}

func (m *Middleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(localRole) != models.RoleAdmin {
			return forbidden(c)
		}

		return c.Next()
	}
}

// allowSelf reports whether the requested userId matches the authenticated
// identity; admins may act on any user.
func allowSelf(c *fiber.Ctx, userID string) bool {
	if userID == c.Locals(localUserID) {
		return true
	}

	return c.Locals(localRole) == models.RoleAdmin
}

func authedUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

func extractBearer(header string) string {
	const prefix = "Bearer "

	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    "UNAUTHORIZED",
		"message": msg,
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"code":    "FORBIDDEN",
		"message": "access denied",
	})
}
