package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"mybalance/internal/api/handlers"
	"mybalance/internal/dto"
	"mybalance/internal/models"
	"mybalance/internal/repository"
	"mybalance/internal/service"
	"mybalance/pkg/auth"
	"mybalance/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type memLedger[T models.Record] struct {
	mu      sync.Mutex
	records map[int64]T
	nextID  int64
}

func newMemLedger[T models.Record]() *memLedger[T] {
	return &memLedger[T]{records: make(map[int64]T)}
}

func (m *memLedger[T]) GetByID(_ context.Context, id int64) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return rec, nil
}

func (m *memLedger[T]) ListByUser(ctx context.Context, userID int64) ([]T, error) {
	return m.ListByUserAndDateRange(ctx, userID, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

func (m *memLedger[T]) ListByUserAndDateRange(_ context.Context, userID int64, start, end time.Time) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w := models.Window{Start: start, End: end}
	var out []T
	for _, rec := range m.records {
		if rec.Base().UserID == userID && w.Contains(rec.Base().Date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memLedger[T]) Create(_ context.Context, rec T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	rec.Base().ID = m.nextID
	m.records[m.nextID] = rec
	return nil
}

func (m *memLedger[T]) Update(_ context.Context, rec T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.Base().ID] = rec
	return nil
}

func (m *memLedger[T]) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

type memUsers struct {
	mu    sync.Mutex
	users []*models.User
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = int64(len(m.users) + 1)
	m.users = append(m.users, u)
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == models.NormalizeEmail(email) {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5 * time.Second,
			WriteTimeout:       5 * time.Second,
			AllowOrigins:       "*",
			ExposeErrorDetails: true,
		},
		JWT:       config.JWTConfig{SecretKey: "router-test-secret", Expiration: time.Hour},
		RateLimit: config.RateLimitConfig{AuthMax: 3, AuthWindow: time.Minute},
	}

	incomes := newMemLedger[*models.Income]()
	expenses := newMemLedger[*models.Expense]()
	savings := newMemLedger[*models.Savings]()
	jwt := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	return SetupRouter(Handlers{
		Auth:      handlers.NewAuthHandler(service.NewAuthService(&memUsers{}, jwt, logger), logger),
		Dashboard: handlers.NewDashboardHandler(service.NewSummaryService(incomes, expenses, savings, logger), true, logger),
		Income:    handlers.NewIncomeHandler(service.NewIncomeService(incomes, logger), true, logger),
		Expense:   handlers.NewExpenseHandler(service.NewExpenseService(expenses, logger), true, logger),
		Savings:   handlers.NewSavingsHandler(service.NewSavingsService(savings, logger), true, logger),
		Health:    handlers.NewHealthHandler(okPinger{}, logger),
	}, jwt, cfg, logger)
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return resp, data
}

func register(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := call(t, app, "POST", "/api/auth/register", "", dto.RegisterRequest{
		Email: email, FirstName: "Test", LastName: "User", Password: "secret123",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register %s: status %d body %s", email, resp.StatusCode, body)
	}
	var out dto.AuthResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out.Token
}

func TestRouter_EndToEndSummary(t *testing.T) {
	app := newTestApp(t)
	token := register(t, app, "ana@example.com")

	resp, body := call(t, app, "POST", "/api/income", token, dto.IncomeRequest{
		Amount: decimal.NewFromInt(1000), Category: "salary", Description: "January salary", Date: "2024-01-15",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create income: %d %s", resp.StatusCode, body)
	}
	resp, body = call(t, app, "POST", "/api/expenses", token, dto.ExpenseRequest{
		Amount: decimal.NewFromInt(300), Category: "housing", Description: "January rent", Date: "2024-01-20",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create expense: %d %s", resp.StatusCode, body)
	}

	resp, body = call(t, app, "GET", "/api/dashboard/summary/date-range?startDate=2024-01-01&endDate=2024-02-01", token, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("summary: %d %s", resp.StatusCode, body)
	}
	var summary dto.FinancialSummaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !summary.TotalIncome.Equal(decimal.NewFromInt(1000)) ||
		!summary.TotalExpenses.Equal(decimal.NewFromInt(300)) ||
		!summary.Balance.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	// A second user sees none of it.
	other := register(t, app, "ben@example.com")
	_, body = call(t, app, "GET", "/api/dashboard/summary/date-range?startDate=2024-01-01&endDate=2024-02-01", other, nil)
	if err := json.Unmarshal(body, &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !summary.TotalIncome.IsZero() {
		t.Fatalf("other user's income leaked: %s", summary.TotalIncome)
	}
	if resp, _ := call(t, app, "GET", "/api/income/1", other, nil); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("foreign income: status %d, want 404", resp.StatusCode)
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{
		"/api/auth/me",
		"/api/dashboard/summary",
		"/api/income",
		"/api/expenses",
		"/api/savings",
	} {
		resp, _ := call(t, app, "GET", path, "", nil)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s without token: status %d, want 401", path, resp.StatusCode)
		}
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	app := newTestApp(t)
	if resp, _ := call(t, app, "GET", "/health", "", nil); resp.StatusCode != fiber.StatusOK {
		t.Errorf("health: status %d", resp.StatusCode)
	}
	resp, body := call(t, app, "POST", "/api/auth/validate-token", "", nil)
	if resp.StatusCode != fiber.StatusOK || !bytes.Contains(body, []byte(`"isValid":false`)) {
		t.Errorf("validate-token: status %d body %s", resp.StatusCode, body)
	}
	if resp, _ := call(t, app, "GET", "/api/nowhere", "", nil); resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown route: status %d, want 404", resp.StatusCode)
	}
}

func TestRouter_AuthRateLimit(t *testing.T) {
	app := newTestApp(t)
	login := dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}

	var last int
	for i := 0; i < 4; i++ {
		resp, _ := call(t, app, "POST", "/api/auth/login", "", login)
		last = resp.StatusCode
		if i < 3 && last != fiber.StatusUnauthorized {
			t.Fatalf("attempt %d: status %d, want 401", i+1, last)
		}
	}
	if last != fiber.StatusTooManyRequests {
		t.Fatalf("fourth attempt: status %d, want 429", last)
	}
}

func TestRouter_DuplicateRegistration(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "ana@example.com")
	resp, _ := call(t, app, "POST", "/api/auth/register", "", dto.RegisterRequest{
		Email: "ANA@example.com", FirstName: "Ana", LastName: "Again", Password: "secret123",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status %d, want 409", resp.StatusCode)
	}
}
