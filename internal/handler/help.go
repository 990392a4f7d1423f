package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/DungeonBot_Go/internal/help"
)

// HelpResponse represents the structure for help responses
type HelpResponse struct {
	Platform    string `json:"platform"`
	Topic       string `json:"topic,omitempty"`
	Description string `json:"description"`
}

// HandleGetHelp handles the /help endpoint. An unknown or missing topic
// returns the list of available topics.
func HandleGetHelp(helpService *help.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := strings.ToLower(r.URL.Query().Get("topic"))
		platform := strings.ToLower(GetOptionalQueryParam(r, "platform", "discord"))

		response := HelpResponse{
			Platform:    platform,
			Topic:       topic,
			Description: helpService.Describe(topic, platform),
		}

		respondJSON(w, http.StatusOK, response)
	}
}
