package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mentorhub_backend/internal/app"
	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/models"
)

// TestServer runs the full HTTP stack against a real database. Its client
// carries a cookie jar so session cookies set by login flow into later
// requests, the same way a browser would send them.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Client *http.Client
}

// NewTestServer builds the server against DATABASE_URL. Tests are skipped
// when the variable is unset so the suite stays runnable without postgres.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Availability{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	server := httptest.NewServer(app.SetupRouter(cfg, db))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	return &TestServer{
		Server: server,
		DB:     db,
		Client: &http.Client{Jar: jar},
	}
}

// Reset wipes all rows so each test starts from a clean database.
func (ts *TestServer) Reset(t *testing.T) {
	t.Helper()
	for _, table := range []string{"availabilities", "profiles", "users"} {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clear table %s: %v", table, err)
		}
	}
}

// SendRequest performs an HTTP call against the test server and returns the
// response plus its body as a string. The body argument is JSON-encoded when
// non-nil.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(raw)
}

// SignupAndLogin registers a fresh user through the API and logs in, leaving
// the session cookies in the client jar. The created user's ID is returned.
func (ts *TestServer) SignupAndLogin(t *testing.T, fullName, email, password, profession string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/user/signup", map[string]string{
		"fullName":   fullName,
		"email":      email,
		"password":   password,
		"profession": profession,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("signup failed with status %d: %s", res.StatusCode, body)
	}

	res, body = ts.SendRequest(t, http.MethodPost, "/api/user/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", res.StatusCode, body)
	}

	var parsed struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("failed to parse login response: %v", err)
	}
	if parsed.User.ID == "" {
		t.Fatalf("login response missing user id: %s", body)
	}
	return parsed.User.ID
}
