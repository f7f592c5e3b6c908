package dependency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/cache"
	"github.com/finance-tracker/ledger/internal/infra/db"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Database: config.DatabaseConfig{
			Driver: db.DriverSQLite,
			URL:    "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared",
		},
		RateLimit: config.RateLimitConfig{Enabled: true, MaxRequests: 2, Window: time.Minute},
	}
}

func newTestDatabase(t *testing.T, cfg *config.Config) *db.Database {
	t.Helper()
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if err := database.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestNewInjector_ThrottlesWritesOnly(t *testing.T) {
	cfg := newTestConfig(t)
	database := newTestDatabase(t, cfg)

	mr := miniredis.RunT(t)
	cfg.Redis = config.RedisConfig{Enabled: true, URL: "redis://" + mr.Addr() + "/0"}
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = redisClient.Close() })

	engine := NewInjector(cfg, database.DB(), database.HealthCheck, redisClient).Router.Setup(cfg.Server.Environment)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/debts", strings.NewReader(`{"name":"Car Loan","initialAmount":"100"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := post(); code != http.StatusCreated {
			t.Fatalf("request %d: expected 201, got %d", i+1, code)
		}
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the limit is reached, got %d", code)
	}

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/debts", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("reads must not be throttled, got %d", rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if !strings.Contains(rec.Body.String(), `"redis":"connected"`) {
		t.Errorf("expected redis to be reported connected, got %s", rec.Body.String())
	}
}

func TestNewInjector_SeedsEmptyStoreOnce(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.RateLimit.Enabled = false
	database := newTestDatabase(t, cfg)

	injector := NewInjector(cfg, database.DB(), database.HealthCheck, nil)

	first, err := injector.Seed.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Seeded {
		t.Fatal("expected empty store to be seeded")
	}
	second, err := injector.Seed.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Seeded {
		t.Error("expected non-empty store to be left alone")
	}

	engine := injector.Router.Setup(cfg.Server.Environment)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"netPosition":"-31950.50"`) {
		t.Errorf("unexpected seeded summary: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if !strings.Contains(rec.Body.String(), `"redis":"disabled"`) {
		t.Errorf("expected redis to be reported disabled, got %s", rec.Body.String())
	}
}

func TestNewInjector_UnknownRouteIsJSON(t *testing.T) {
	cfg := newTestConfig(t)
	database := newTestDatabase(t, cfg)
	engine := NewInjector(cfg, database.DB(), database.HealthCheck, nil).Router.Setup(cfg.Server.Environment)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/goals", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"REQ-010002"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestNewInjector_HealthFollowsDatabase(t *testing.T) {
	cfg := newTestConfig(t)
	database := newTestDatabase(t, cfg)
	engine := NewInjector(cfg, database.DB(), database.HealthCheck, nil).Router.Setup(cfg.Server.Environment)

	health := func() string {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		return rec.Body.String()
	}

	if body := health(); !strings.Contains(body, `"status":"ok"`) || !strings.Contains(body, `"database":"connected"`) {
		t.Errorf("expected healthy database, got %s", body)
	}

	if err := database.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}
	if body := health(); !strings.Contains(body, `"status":"degraded"`) || !strings.Contains(body, `"database":"disconnected"`) {
		t.Errorf("expected degraded database, got %s", body)
	}
}
