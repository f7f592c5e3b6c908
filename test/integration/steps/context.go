// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/infra/cache"
	"github.com/finance-tracker/ledger/internal/infra/dependency"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
	"github.com/finance-tracker/ledger/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	client       *http.Client
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Captured identifiers, keyed by placeholder name such as "debt_id"
	ids map[string]string

	db *mock.Db
}

var (
	suiteOnce   sync.Once
	suiteServer *httptest.Server
	suiteDB     *mock.Db
	suiteRedis  *redis.Client
)

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		startServer()
	})

	ctx.AfterSuite(func() {
		if suiteServer != nil {
			suiteServer.Close()
		}
		if suiteRedis != nil {
			_ = suiteRedis.Close()
		}
	})
}

// startServer wires the full application over the in-memory database and Redis.
func startServer() {
	suiteOnce.Do(func() {
		cfg := &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			Redis: config.RedisConfig{
				Enabled: true,
				URL:     "redis://" + mock.NewRedis() + "/0",
			},
			RateLimit: config.RateLimitConfig{
				Enabled:     true,
				MaxRequests: 1000,
				Window:      time.Minute,
			},
		}

		suiteDB = mock.NewDb(model.All()...)

		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			panic(fmt.Sprintf("failed to connect to redis: %s", err.Error()))
		}
		suiteRedis = redisClient

		injector := dependency.NewInjector(cfg, suiteDB.DbConn, suiteDB.HealthCheck, suiteRedis)
		suiteServer = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		startServer()

		tc := &TestContext{
			server:         suiteServer,
			client:         &http.Client{Timeout: 10 * time.Second},
			requestHeaders: make(map[string]string),
			ids:            make(map[string]string),
			db:             suiteDB,
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, err
		}
		mock.ClearRedis(ctx)

		return SetTestContext(ctx, tc), nil
	})

	// Register step definitions
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDatabaseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response should be a list of (\d+) items?$`, theResponseShouldBeAListOf)
	ctx.Step(`^the response should match json:$`, theResponseShouldMatchJSON)
}

// registerDatabaseSteps registers persistence assertion steps.
func registerDatabaseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, theDbShouldContainObjectsInWithTheValues)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, body)
}

func sendRequest(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var payload io.Reader
	if body != nil {
		payload = bytes.NewBufferString(tc.replacePlaceholders(body.Content))
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.replacePlaceholders(endpoint), payload)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

// replacePlaceholders substitutes {{name}} with identifiers captured earlier in the scenario.
func (tc *TestContext) replacePlaceholders(content string) string {
	for name, value := range tc.ids {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iRememberTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return ctx, err
	}
	tc.ids[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), tc.replacePlaceholders(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}

	expected = tc.replacePlaceholders(expected)
	actual := fmt.Sprintf("%v", value)
	if value == nil {
		actual = "null"
	}
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	_, err := tc.responseField(field)
	return err
}

func theResponseShouldBeAListOf(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var items []any
	if err := json.Unmarshal(tc.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON list: %w. Body: %s", err, string(tc.responseBody))
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items, got %d. Body: %s", count, len(items), string(tc.responseBody))
	}
	return nil
}

func theResponseShouldMatchJSON(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var expected, actual interface{}

	if err := json.Unmarshal([]byte(tc.replacePlaceholders(body.Content)), &expected); err != nil {
		return fmt.Errorf("failed to parse expected JSON: %w", err)
	}

	if err := json.Unmarshal(tc.responseBody, &actual); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	expectedJSON, _ := json.Marshal(expected)
	actualJSON, _ := json.Marshal(actual)

	if string(expectedJSON) != string(actualJSON) {
		return fmt.Errorf("expected JSON:\n%s\nactual JSON:\n%s", string(expectedJSON), string(actualJSON))
	}

	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	return theDbShouldContainObjectsInWithTheValues(ctx, quantity, table, nil)
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var criteria map[string]any
	if content != nil {
		if err := json.Unmarshal([]byte(tc.replacePlaceholders(content.Content)), &criteria); err != nil {
			return err
		}
	}

	entity, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := tc.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// responseField resolves a dot-separated path such as "0.name" in the last response body.
func (tc *TestContext) responseField(dotSeparatedField string) (any, error) {
	var field any
	if err := json.Unmarshal(tc.responseBody, &field); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		switch v := field.(type) {
		case []any:
			i, err := strconv.Atoi(currentField)
			if err != nil || i < 0 || i >= len(v) {
				return nil, fmt.Errorf("field '%s' not found in response: %s", dotSeparatedField, string(tc.responseBody))
			}
			field = v[i]
		case map[string]any:
			value, ok := v[currentField]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", dotSeparatedField, string(tc.responseBody))
			}
			field = value
		default:
			return nil, errors.New("field '" + dotSeparatedField + "' not found in response: " + string(tc.responseBody))
		}
	}

	return field, nil
}
