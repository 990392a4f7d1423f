package handler

import (
	"net/http"

	"github.com/osse101/DungeonBot_Go/internal/dice"
	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// RollRequest represents a dice roll request.
type RollRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Username   string `json:"username" validate:"required,max=50,excludesall=\x00\n\r\t"`
	Notation   string `json:"notation" validate:"required,max=200"`
}

// HandleRoll evaluates dice notation for a user.
// @Summary Roll dice
// @Description Parse and evaluate dice notation such as "2d6+1" or "1d20 and 2d4"
// @Tags dice
// @Accept json
// @Produce json
// @Param request body RollRequest true "Roll details"
// @Success 200 {object} domain.RollReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /roll [post]
func HandleRoll(diceService dice.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req RollRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Roll dice"); err != nil {
			return
		}

		LogRequestFields(log,
			"platform", req.Platform,
			"username", req.Username,
			"notation", req.Notation)

		report, err := diceService.Roll(r.Context(), req.Platform, req.PlatformID, req.Username, req.Notation)
		if err != nil {
			respondServiceError(w, r, "Roll dice", err)
			return
		}

		log.Info("Dice rolled", "username", report.Username, "rolls", len(report.Outcomes))

		respondJSON(w, http.StatusOK, report)
	}
}
