package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	apiHttp "swaphub/internal/api/http"
	pgMocks "swaphub/internal/repository/postgres/mocks"
	"swaphub/internal/usecasees/structs"
	"swaphub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "https://id.test"
)

type fakeIntents struct {
	lastUserID string
	out        interface{}
	err        error
}

func (f *fakeIntents) Process(userID string, intent *structs.Intent) (interface{}, error) {
	f.lastUserID = userID
	return f.out, f.err
}

type apiMocks struct {
	orderRepo *pgMocks.OrderRepo
	userRepo  *pgMocks.UserRepo
	coinsRepo *pgMocks.CoinsRepo
	convRepo  *pgMocks.ConversationRepo
	intents   *fakeIntents
}

func newTestApp(t *testing.T) (*fiber.App, *apiMocks) {
	t.Helper()

	mocks := &apiMocks{
		orderRepo: &pgMocks.OrderRepo{},
		userRepo:  &pgMocks.UserRepo{},
		coinsRepo: &pgMocks.CoinsRepo{},
		convRepo:  &pgMocks.ConversationRepo{},
		intents:   &fakeIntents{},
	}

	app := fiber.New()

	middleware := apiHttp.NewMiddleware(app, []byte(testSecret), testIssuer)
	handler := apiHttp.NewHandler(app, mocks.orderRepo, mocks.userRepo, mocks.coinsRepo, mocks.convRepo, mocks.intents, logrus.New())

	apiHttp.RegisterHTTPEndpoints(app, middleware, handler)

	return app, mocks
}

func signToken(t *testing.T, subject, role string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iss":  testIssuer,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *nethttp.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

func Test_SwapHistory_Unauthorized(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, nethttp.MethodGet, "/api/swap-history?userId=user-1", "", nil)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)
}

func Test_SwapHistory_CrossUserForbidden(t *testing.T) {
	app, _ := newTestApp(t)
	token := signToken(t, "user-1", models.RoleUser)

	resp := doRequest(t, app, nethttp.MethodGet, "/api/swap-history?userId=user-2", token, nil)
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
}

func Test_SwapHistory_OK(t *testing.T) {
	app, mocks := newTestApp(t)
	token := signToken(t, "user-1", models.RoleUser)

	mocks.orderRepo.On("GetHistory", "user-1", 20).Return([]models.Order{{
		SideShiftOrderID: "X1",
		UserID:           "user-1",
		Status:           models.OrderStatusSettled,
	}}, nil)

	resp := doRequest(t, app, nethttp.MethodGet, "/api/swap-history?userId=user-1", token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var body struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, "X1", body.Orders[0].SideShiftOrderID)
}

func Test_SwapHistory_BadLimit(t *testing.T) {
	app, _ := newTestApp(t)
	token := signToken(t, "user-1", models.RoleUser)

	resp := doRequest(t, app, nethttp.MethodGet, "/api/swap-history?userId=user-1&limit=5000", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func Test_ChatHistoryAppend_Created(t *testing.T) {
	app, mocks := newTestApp(t)
	token := signToken(t, "user-1", models.RoleUser)

	mocks.convRepo.On("AppendMessage", "user-1", "user", "swap 0.5 btc to eth").Return(&models.ChatMessage{
		ID:      "msg-1",
		UserID:  "user-1",
		Role:    "user",
		Content: "swap 0.5 btc to eth",
	}, nil)

	resp := doRequest(t, app, nethttp.MethodPost, "/api/chat/history", token, map[string]string{
		"userId":  "user-1",
		"content": "swap 0.5 btc to eth",
	})
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
}

func Test_UserSettings_DefaultsWhenMissing(t *testing.T) {
	app, mocks := newTestApp(t)
	token := signToken(t, "user-1", models.RoleUser)

	mocks.userRepo.On("GetSettings", "user-1").Return(nil, assert.AnError)

	resp := doRequest(t, app, nethttp.MethodGet, "/api/user/settings?userId=user-1", token, nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var settings models.UserSettings
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
	assert.Equal(t, "0.01", settings.SlippageTolerance.String())
}

func Test_AdminCoinsAdjust_NonAdminForbidden(t *testing.T) {
	app, _ := newTestApp(t)
	token := signToken(t, "user-1", models.RoleUser)

	resp := doRequest(t, app, nethttp.MethodPost, "/api/admin/coins/adjust", token, map[string]interface{}{
		"targetUserId": "user-2",
		"action":       "gift",
		"amount":       "10",
	})
	assert.Equal(t, nethttp.StatusForbidden, resp.StatusCode)
}

func Test_AdminCoinsAdjust_OK(t *testing.T) {
	app, mocks := newTestApp(t)
	token := signToken(t, "admin-1", models.RoleAdmin)

	mocks.coinsRepo.On("Adjust", "admin-1", "user-2", "gift", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("10"))
	}), "welcome bonus").Return(&models.User{
		ID:          "user-2",
		CoinBalance: decimal.RequireFromString("110"),
	}, nil)

	resp := doRequest(t, app, nethttp.MethodPost, "/api/admin/coins/adjust", token, map[string]interface{}{
		"targetUserId": "user-2",
		"action":       "gift",
		"amount":       "10",
		"note":         "welcome bonus",
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func Test_AdminCoinsAdjust_BadAction(t *testing.T) {
	app, _ := newTestApp(t)
	token := signToken(t, "admin-1", models.RoleAdmin)

	resp := doRequest(t, app, nethttp.MethodPost, "/api/admin/coins/adjust", token, map[string]interface{}{
		"targetUserId": "user-2",
		"action":       "steal",
		"amount":       "10",
	})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func Test_AdminCoinsGiftAll_OK(t *testing.T) {
	app, mocks := newTestApp(t)
	token := signToken(t, "admin-1", models.RoleAdmin)

	mocks.coinsRepo.On("GiftAll", "admin-1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("5"))
	}), "").Return(1000, nil)

	resp := doRequest(t, app, nethttp.MethodPost, "/api/admin/coins/gift-all", token, map[string]interface{}{
		"amount": "5",
	})
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	var body struct {
		UsersCredited int `json:"usersCredited"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1000, body.UsersCredited)
}

func Test_ProcessIntent_ValidationErrorListsFields(t *testing.T) {
	app, _ := newTestApp(t)
	token := signToken(t, "user-1", models.RoleUser)

	resp := doRequest(t, app, nethttp.MethodPost, "/api/intent", token, map[string]interface{}{
		"intent":    "swap",
		"fromAsset": "BTC",
	})
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)

	var body struct {
		Code   string   `json:"code"`
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "amount")
}

func Test_ProcessIntent_UsesTokenIdentity(t *testing.T) {
	app, mocks := newTestApp(t)
	token := signToken(t, "user-7", models.RoleUser)

	mocks.intents.out = map[string]string{"ok": "yes"}

	resp := doRequest(t, app, nethttp.MethodPost, "/api/intent", token, map[string]interface{}{
		"intent": "portfolio",
	})
	assert.Equal(t, nethttp.StatusCreated, resp.StatusCode)
	assert.Equal(t, "user-7", mocks.intents.lastUserID)
}

func Test_HealthCheck_NoAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, nethttp.MethodGet, "/api/healthcheck", "", nil)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}
