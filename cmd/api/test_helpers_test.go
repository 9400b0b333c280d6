// File: cmd/api/test_helpers_test.go
// Description: test helper functions for API handler tests

package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/mflores-dev/posapi/internal/data"
	"github.com/mflores-dev/posapi/internal/media"
	"github.com/mflores-dev/posapi/internal/token"
	"golang.org/x/crypto/bcrypt"
)

const testSessionSecret = "test-session-secret-0123456789abcdef"

// newTestApp creates an application instance without a database connection.
// Handlers that never touch the pool (media delivery, printer proxy, session
// logout, validation failures) are exercised through it directly.
func newTestApp(t *testing.T) *app {
	t.Helper()

	store, err := media.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create media store: %v", err)
	}

	cfg := config{
		port: 4000,
		env:  "test",
	}
	cfg.session.secret = testSessionSecret
	cfg.session.ttl = time.Hour
	cfg.cors.trustedOrigins = []string{"http://localhost:3000"}

	return &app{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		models: data.NewModels(nil),
		media:  store,
	}
}

// newTestDB connects to the integration test database, skipping the test when
// none is reachable. Tests that go through authenticated routes need it.
func newTestDB(t *testing.T) (*sql.DB, *data.TestUtils) {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set; skipping database integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Skipf("Failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("Failed to ping test database: %v", err)
	}

	testUtils := data.NewTestUtils(db)
	if err := testUtils.CleanDatabase(); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, testUtils
}

// executeRequest executes an HTTP request through the full route chain.
func executeRequest(app *app, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)
	return rr
}

// makeRequest creates and executes an HTTP request with an optional JSON body.
func makeRequest(t *testing.T, app *app, method, url string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return executeRequest(app, req)
}

// parseJSONResponse parses a JSON response into a destination struct.
func parseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	err := json.NewDecoder(rr.Body).Decode(dest)
	if err != nil {
		t.Fatalf("Failed to parse JSON response: %v. Body: %s", err, rr.Body.String())
	}
}

// checkResponseCode checks if the response has the expected status code.
func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()

	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// sessionCookieFor mints a valid session cookie for the given user.
func sessionCookieFor(t *testing.T, app *app, userID int64, role string) *http.Cookie {
	t.Helper()

	signed, _, err := token.New(app.config.session.secret, userID, role, app.config.session.ttl)
	if err != nil {
		t.Fatalf("Failed to create session token: %v", err)
	}

	return &http.Cookie{Name: sessionCookieName, Value: signed}
}

// seedMediaFile writes a fixture file under the app's media root.
func seedMediaFile(t *testing.T, app *app, relPath string, content []byte) {
	t.Helper()

	full := filepath.Join(app.media.Root(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("Failed to create media fixture directory: %v", err)
	}
	if err := os.WriteFile(full, content, 0o644); err != nil {
		t.Fatalf("Failed to write media fixture: %v", err)
	}
}

// createTestUser seeds an account directly in the database and returns its ID
// along with the plaintext password.
func createTestUser(t *testing.T, testUtils *data.TestUtils, email, firstName, lastName, role string, isActive bool) (int64, string) {
	t.Helper()

	password := "Password123!"
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	userID, err := testUtils.SeedTestUser(email, firstName, lastName, role, passwordHash, isActive)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID, password
}
