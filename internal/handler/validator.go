package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Validator wraps a validator.Validate instance with the custom rules
// registered.
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator builds the shared validator. Safe to call from multiple
// goroutines; only the first call does any work.
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("platform", validatePlatform)
		validate = &Validator{validate: v}
	})
}

// GetValidator returns the shared validator, initializing it on first use.
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using its validate tags.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError converts validation errors into a field name to
// message map. Field names are lowercased so internal struct names never
// reach the client.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	errs := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		errs[strings.ToLower(e.Field())] = fieldMessage(e)
	}
	return errs
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "platform":
		return "Invalid platform"
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "excludesall":
		return "Contains invalid characters"
	default:
		return "Invalid value"
	}
}

// ValidPlatforms lists the chat platforms the platform tag accepts.
var ValidPlatforms = map[string]bool{
	domain.PlatformTwitch:  true,
	domain.PlatformYoutube: true,
	domain.PlatformDiscord: true,
}

// validatePlatform matches known platforms case-insensitively. Empty values
// pass so optional fields stay optional; combine with required when the
// field must be set.
func validatePlatform(fl validator.FieldLevel) bool {
	platform := fl.Field().String()
	if platform == "" {
		return true
	}
	return ValidPlatforms[strings.ToLower(platform)]
}
