//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// TestDispatchRollCommand pushes a chat message through the whole stack:
// gateway payload in, dispatched roll reply out.
func TestDispatchRollCommand(t *testing.T) {
	request := map[string]interface{}{
		"platform":    domain.PlatformTwitch,
		"platform_id": fmt.Sprintf("smoke_roll_%d", time.Now().UnixNano()),
		"username":    "SmokeRoller",
		"text":        "!roll 2d6+1",
	}

	resp, body := makeRequest(t, "POST", "/api/v1/message/handle", request)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result domain.DispatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !result.Handled {
		t.Error("Expected the roll command to be handled")
	}
	if result.Command != domain.CommandRoll {
		t.Errorf("Expected command %q, got %q", domain.CommandRoll, result.Command)
	}
	if result.Reply == "" {
		t.Error("Expected a roll reply, got none")
	}
}

func TestDispatchHelpCommand(t *testing.T) {
	request := map[string]interface{}{
		"platform":    domain.PlatformTwitch,
		"platform_id": fmt.Sprintf("smoke_help_%d", time.Now().UnixNano()),
		"username":    "SmokeHelper",
		"text":        "!help roll",
	}

	resp, body := makeRequest(t, "POST", "/api/v1/message/handle", request)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result domain.DispatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !result.Handled {
		t.Error("Expected the help command to be handled")
	}
	if result.Command != domain.CommandHelp {
		t.Errorf("Expected command %q, got %q", domain.CommandHelp, result.Command)
	}
	if result.Reply == "" {
		t.Error("Expected a help reply, got none")
	}
}

// TestDispatchPlainChat verifies ordinary chatter passes through unhandled
// instead of producing a reply.
func TestDispatchPlainChat(t *testing.T) {
	request := map[string]interface{}{
		"platform":    domain.PlatformTwitch,
		"platform_id": fmt.Sprintf("smoke_chat_%d", time.Now().UnixNano()),
		"username":    "SmokeChatter",
		"text":        "good morning adventurers",
	}

	resp, body := makeRequest(t, "POST", "/api/v1/message/handle", request)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var result domain.DispatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if result.Handled {
		t.Error("Expected plain chat to pass through unhandled")
	}
	if result.Reply != "" {
		t.Errorf("Expected no reply for plain chat, got %q", result.Reply)
	}
}
