package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"feedback-board-api/internal/database"
)

// TestAdminToken is the admin secret used by handler and router tests
const TestAdminToken = "test-admin-token"

// SetupTestDB opens a migrated in-memory SQLite database that lives for the duration of the test
func SetupTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.New(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          ":memory:?_foreign_keys=1&_busy_timeout=5000",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db, zap.NewNop()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// MakeRequest performs a JSON request against handler and returns the recorder
func MakeRequest(t testing.TB, handler http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Fatalf("Failed to encode request body: %v", err)
			}
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// AdminHeaders returns the header map carrying the test admin token
func AdminHeaders() map[string]string {
	return map[string]string{"x-admin-token": TestAdminToken}
}

// DecodeJSON decodes the recorder body into v
func DecodeJSON(t testing.TB, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
}
