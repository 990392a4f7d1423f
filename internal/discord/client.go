package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// apiV1Prefix is prepended to every API path except the public health check.
const apiV1Prefix = "/api/v1"

// APIClient handles communication with the DungeonBot core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string

	maxRetries int
	retryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey:     apiKey,
		maxRetries: 3,
		retryDelay: 500 * time.Millisecond,
	}
}

// doRequest performs an HTTP request with retry logic. Server errors (5xx)
// are retried with exponential backoff plus jitter; anything below 500 is
// returned to the caller as-is.
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := c.BaseURL + apiV1Prefix + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeAPIError extracts the error message from a failed response body.
// The core API wraps errors as {"error": "..."}.
func decodeAPIError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// decodeResponse decodes a successful response body into out, treating any
// status outside okStatuses as an API error.
func decodeResponse(resp *http.Response, out interface{}, okStatuses ...int) error {
	defer resp.Body.Close()

	ok := false
	for _, status := range okStatuses {
		if resp.StatusCode == status {
			ok = true
			break
		}
	}
	if !ok {
		return decodeAPIError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// HandleMessage forwards a chat message to the core dispatcher. The result
// says whether a command was handled and carries the reply to post.
func (c *APIClient) HandleMessage(platform, platformID, username, text string) (*domain.DispatchResult, error) {
	req := map[string]string{
		"platform":    platform,
		"platform_id": platformID,
		"username":    username,
		"text":        text,
	}

	resp, err := c.doRequest(http.MethodPost, "/message/handle", req)
	if err != nil {
		return nil, err
	}

	var result domain.DispatchResult
	if err := decodeResponse(resp, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// Roll evaluates dice notation for a user
func (c *APIClient) Roll(platform, platformID, username, notation string) (*domain.RollReport, error) {
	req := map[string]string{
		"platform":    platform,
		"platform_id": platformID,
		"username":    username,
		"notation":    notation,
	}

	resp, err := c.doRequest(http.MethodPost, "/roll", req)
	if err != nil {
		return nil, err
	}

	var report domain.RollReport
	if err := decodeResponse(resp, &report, http.StatusOK); err != nil {
		return nil, err
	}
	return &report, nil
}

// RegisterUser registers or retrieves a Discord user
func (c *APIClient) RegisterUser(username, discordID string) (*domain.User, error) {
	req := map[string]string{
		"platform":    domain.PlatformDiscord,
		"platform_id": discordID,
		"username":    username,
	}

	resp, err := c.doRequest(http.MethodPost, "/user/register", req)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := decodeResponse(resp, &user, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateQuest adds a new quest to the campaign log
func (c *APIClient) CreateQuest(title, description, questGiver, locationGiven string) (*domain.Quest, error) {
	req := map[string]string{
		"title":          title,
		"description":    description,
		"quest_giver":    questGiver,
		"location_given": locationGiven,
	}

	resp, err := c.doRequest(http.MethodPost, "/quest", req)
	if err != nil {
		return nil, err
	}

	var quest domain.Quest
	if err := decodeResponse(resp, &quest, http.StatusCreated); err != nil {
		return nil, err
	}
	return &quest, nil
}

// GetQuestByTitle looks up one quest by its title (case-insensitive)
func (c *APIClient) GetQuestByTitle(title string) (*domain.Quest, error) {
	path := "/quest?title=" + url.QueryEscape(title)

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var quest domain.Quest
	if err := decodeResponse(resp, &quest, http.StatusOK); err != nil {
		return nil, err
	}
	return &quest, nil
}

// AddQuestDetail appends a detail line to a quest's description
func (c *APIClient) AddQuestDetail(questID int, detail string) (*domain.Quest, error) {
	req := map[string]interface{}{
		"id":     questID,
		"detail": detail,
	}

	resp, err := c.doRequest(http.MethodPost, "/quest/detail", req)
	if err != nil {
		return nil, err
	}

	var quest domain.Quest
	if err := decodeResponse(resp, &quest, http.StatusOK); err != nil {
		return nil, err
	}
	return &quest, nil
}

// CompleteQuest marks a quest as finished
func (c *APIClient) CompleteQuest(questID int) (*domain.Quest, error) {
	req := map[string]int{"id": questID}

	resp, err := c.doRequest(http.MethodPost, "/quest/complete", req)
	if err != nil {
		return nil, err
	}

	var quest domain.Quest
	if err := decodeResponse(resp, &quest, http.StatusOK); err != nil {
		return nil, err
	}
	return &quest, nil
}

// QuestList is a quest listing alongside its rendered chat text
type QuestList struct {
	Message string         `json:"message"`
	Quests  []domain.Quest `json:"quests"`
}

// ListQuests returns the quest log filtered by newest, updated, active,
// inactive or all. A zero limit uses the server default.
func (c *APIClient) ListQuests(filter string, limit int) (*QuestList, error) {
	path := "/quest/list"
	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var list QuestList
	if err := decodeResponse(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetHelp returns the rendered help text for a topic. An empty topic yields
// the listing of available topics.
func (c *APIClient) GetHelp(topic string) (string, error) {
	path := "/help?platform=" + domain.PlatformDiscord
	if topic != "" {
		path += "&topic=" + url.QueryEscape(topic)
	}

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}

	var helpResp struct {
		Platform    string `json:"platform"`
		Topic       string `json:"topic"`
		Description string `json:"description"`
	}
	if err := decodeResponse(resp, &helpResp, http.StatusOK); err != nil {
		return "", err
	}
	return helpResp.Description, nil
}
