package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fintrack/internal/clock"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/server"
	"fintrack/internal/testutil"
	"fintrack/internal/validator"
)

const testOpsKey = "integration-ops-key"

// testNow is the instant every test app's clock is frozen at.
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Unit   *database.UnitOfWork
	Clock  *clock.Fixed
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T, opts ...database.UnitOption) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	unit := database.NewUnitOfWork(db, opts...)
	clk := clock.NewFixed(testNow)
	svc := server.NewServices(db, unit, clk, decimal.RequireFromString("0.01"))
	router := server.NewRouter(svc, server.Options{OpsAPIKey: testOpsKey})

	return &testApp{DB: db, Unit: unit, Clock: clk, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustRequest is request plus a status check.
func (app *testApp) mustRequest(t *testing.T, method, path, body, token string, want int) map[string]interface{} {
	t.Helper()
	rec := app.request(method, path, body, token)
	if rec.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// object returns the nested JSON object stored under key.
func object(t *testing.T, m map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	v, ok := m[key].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object under %q, got %v", key, m[key])
	}
	return v
}

// assertAmount compares a decimal string field against want.
func assertAmount(t *testing.T, m map[string]interface{}, key, want string) {
	t.Helper()
	raw, ok := m[key].(string)
	if !ok {
		t.Fatalf("expected decimal string under %q, got %v", key, m[key])
	}
	got, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("field %q is not a decimal: %q", key, raw)
	}
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: expected %s, got %s", key, want, got)
	}
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	body := parseJSON(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %s, got %v", code, errObj["code"])
	}
}

// registerUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (accessToken, refreshToken, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	result := app.mustRequest(t, "POST", "/api/v1/auth/register", body, "", http.StatusCreated)
	user := object(t, result, "user")
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(string)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	result := app.mustRequest(t, "POST", "/api/v1/auth/login", body, "", http.StatusOK)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createWallet creates a wallet and returns its ID.
func (app *testApp) createWallet(t *testing.T, token, name, initial string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"currency":"USD","initial_balance":%q}`, name, initial)
	result := app.mustRequest(t, "POST", "/api/v1/wallets", body, token, http.StatusCreated)
	return object(t, result, "wallet")["id"].(string)
}

// createCategory creates a category and returns its ID.
func (app *testApp) createCategory(t *testing.T, token, name, categoryType string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"type":%q}`, name, categoryType)
	result := app.mustRequest(t, "POST", "/api/v1/categories", body, token, http.StatusCreated)
	return object(t, result, "category")["id"].(string)
}

// createEntry records an income or expense entry and returns its ID.
func (app *testApp) createEntry(t *testing.T, token, walletID, categoryID, entryType, amount, date string) string {
	t.Helper()
	category := "null"
	if categoryID != "" {
		category = fmt.Sprintf("%q", categoryID)
	}
	body := fmt.Sprintf(`{"wallet_id":%q,"category_id":%s,"type":%q,"amount":%q,"date":%q}`,
		walletID, category, entryType, amount, date)
	result := app.mustRequest(t, "POST", "/api/v1/transactions", body, token, http.StatusCreated)
	return object(t, result, "transaction")["id"].(string)
}

// wallet fetches a wallet.
func (app *testApp) wallet(t *testing.T, token, walletID string) map[string]interface{} {
	t.Helper()
	result := app.mustRequest(t, "GET", "/api/v1/wallets/"+walletID, "", token, http.StatusOK)
	return object(t, result, "wallet")
}
