package handler

import (
	"net/http"

	"github.com/osse101/DungeonBot_Go/internal/dispatch"
	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// HandleMessageRequest represents a chat message forwarded by a gateway.
type HandleMessageRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Username   string `json:"username" validate:"required,max=50,excludesall=\x00\n\r\t"`
	Text       string `json:"text" validate:"required"`
}

// HandleMessage routes one chat message through the command dispatcher.
// @Summary Handle chat message
// @Description Dispatch a chat message, running any command it carries
// @Tags message
// @Accept json
// @Produce json
// @Param request body HandleMessageRequest true "Message details"
// @Success 200 {object} domain.DispatchResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /message/handle [post]
func HandleMessage(dispatchService dispatch.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req HandleMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Handle message"); err != nil {
			return
		}

		LogRequestFields(log,
			"platform", req.Platform,
			"platform_id", req.PlatformID,
			"username", req.Username)

		result, err := dispatchService.Handle(r.Context(), domain.IncomingMessage{
			Platform:   req.Platform,
			PlatformID: req.PlatformID,
			Username:   req.Username,
			Text:       req.Text,
		})
		if err != nil {
			respondServiceError(w, r, "Handle message", err)
			return
		}

		log.Info("Message handled",
			"platform", req.Platform,
			"handled", result.Handled,
			"command", result.Command)

		respondJSON(w, http.StatusOK, result)
	}
}
