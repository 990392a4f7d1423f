package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/user"
)

// RegisterUserRequest represents the request to register a platform identity.
type RegisterUserRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Username   string `json:"username" validate:"required,max=50,excludesall=\x00\n\r\t"`
}

// UpdateUsernameRequest represents the request to change a user's display name.
type UpdateUsernameRequest struct {
	Platform   string `json:"platform" validate:"required,platform"`
	PlatformID string `json:"platform_id" validate:"required"`
	Username   string `json:"username" validate:"required,max=50,excludesall=\x00\n\r\t"`
}

// HandleRegisterUser registers a platform identity, creating the user when
// the identity is unknown. Registering an already-linked identity returns
// the stored user unchanged.
// @Summary Register user
// @Description Register a platform identity, creating the user if needed
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Identity details"
// @Success 200 {object} domain.User
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegisterUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		// Look up the identity first so the response can distinguish a
		// fresh registration from an already-linked one.
		existing, err := userService.FindUserByPlatformID(r.Context(), req.Platform, req.PlatformID)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			respondServiceError(w, r, "Register user", err)
			return
		}
		isNewUser := existing == nil

		registered, err := userService.RegisterUser(r.Context(), req.Platform, req.PlatformID, req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		log.Info("User registered",
			"user_id", registered.ID,
			"username", registered.Username,
			"platform", req.Platform,
			"is_new", isNewUser)

		if isNewUser {
			respondJSON(w, http.StatusCreated, registered)
			return
		}
		respondJSON(w, http.StatusOK, registered)
	}
}

// HandleGetUser looks up a user by platform identity.
// @Summary Get user
// @Description Look up a user by platform and platform ID
// @Tags user
// @Produce json
// @Param platform query string true "Platform name"
// @Param platform_id query string true "Platform-specific user ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user [get]
func HandleGetUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform, ok := GetQueryParam(r, w, "platform")
		if !ok {
			return
		}
		platformID, ok := GetQueryParam(r, w, "platform_id")
		if !ok {
			return
		}

		found, err := userService.FindUserByPlatformID(r.Context(), platform, platformID)
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}

// HandleUpdateUsername changes the display name stored for a user.
// @Summary Update username
// @Description Change the display name of the user owning a platform identity
// @Tags user
// @Accept json
// @Produce json
// @Param request body UpdateUsernameRequest true "New username"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/username [post]
func HandleUpdateUsername(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req UpdateUsernameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update username"); err != nil {
			return
		}

		updated, err := userService.UpdateUsername(r.Context(), req.Platform, req.PlatformID, req.Username)
		if err != nil {
			respondServiceError(w, r, "Update username", err)
			return
		}

		log.Info("Username updated",
			"user_id", updated.ID,
			"username", updated.Username,
			"platform", req.Platform)

		respondJSON(w, http.StatusOK, updated)
	}
}
