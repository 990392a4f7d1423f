package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	// Headers are only logged at debug level
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/quest/list", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	logged := buf.String()

	if !strings.Contains(logged, LogMsgRequestHeaders) {
		t.Fatalf("headers were not logged: %s", logged)
	}
	if strings.Contains(logged, "secret-key-123") {
		t.Errorf("log leaked the API key: %s", logged)
	}
	if strings.Contains(logged, "Bearer mytoken") {
		t.Errorf("log leaked the Authorization header: %s", logged)
	}
	if !strings.Contains(logged, RedactedValue) {
		t.Errorf("expected redaction marker in header log: %s", logged)
	}
	if !strings.Contains(logged, "TestAgent") {
		t.Errorf("non-sensitive header missing from log: %s", logged)
	}
}
