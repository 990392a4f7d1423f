package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// CapturedRequest is one request the mock Discord transport swallowed
type CapturedRequest struct {
	Method string
	Path   string
	Body   []byte
}

// TestContext bundles the pieces a command handler test needs:
// a mock core API (httptest.Server plus its mux), an APIClient pointed at
// it, and a Discord session whose HTTP transport records outgoing calls
// instead of hitting Discord.
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu       sync.Mutex
	captured []CapturedRequest
}

// SetupTestContext builds a TestContext and wires its cleanup to the test
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: NewAPIClient(server.URL, "test-api-key"),
		Session:   session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
				req.Body.Close()
			}

			ctx.mu.Lock()
			ctx.captured = append(ctx.captured, CapturedRequest{
				Method: req.Method,
				Path:   req.URL.Path,
				Body:   body,
			})
			ctx.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}

	t.Cleanup(func() {
		server.Close()
	})

	return ctx
}

// Captured returns a copy of all requests the Discord transport recorded
func (c *TestContext) Captured() []CapturedRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedRequest, len(c.captured))
	copy(out, c.captured)
	return out
}

// webhookEdit mirrors the wire shape of an interaction response edit
type webhookEdit struct {
	Content *string                   `json:"content"`
	Embeds  []*discordgo.MessageEmbed `json:"embeds"`
}

// LastEdit decodes the body of the last captured request as a webhook edit.
// Fails the test when nothing was captured.
func (c *TestContext) LastEdit(t *testing.T) *webhookEdit {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.captured) == 0 {
		t.Fatal("no Discord requests captured")
	}

	var edit webhookEdit
	if err := json.Unmarshal(c.captured[len(c.captured)-1].Body, &edit); err != nil {
		t.Fatalf("Failed to decode captured edit: %v", err)
	}
	return &edit
}

// WriteJSON writes data as a JSON response in mock API handlers
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}

// WriteJSONStatus writes a status code then data as JSON
func WriteJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}
