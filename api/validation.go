// Package api provides validation utilities for API request handling.
package api

import (
	"strings"

	"github.com/google/uuid"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// maxGuessRunes bounds a single guess; no Russian word comes close.
const maxGuessRunes = 64

// ValidateGameID validates a game ID path parameter
func ValidateGameID(gameID string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if gameID == "" {
		result.AddError("gameId", "Game ID is required")
		return result
	}

	if _, err := uuid.Parse(gameID); err != nil {
		result.AddError("gameId", "Game ID must be a UUID")
	}

	return result
}

// ValidateCreateGameRequest validates a new game request against the corpus size
func ValidateCreateGameRequest(req *CreateGameRequest, articleCount int) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if articleCount == 0 {
		result.AddError("article", "No articles are available")
		return result
	}
	if req.Article != nil && *req.Article < 1 {
		result.AddError("article", "Article number must be 1 or greater")
	}

	return result
}

// ValidateGuessRequest validates a guess submission
func ValidateGuessRequest(req *GuessRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	guess := strings.TrimSpace(req.Guess)
	if guess == "" {
		result.AddError("guess", "Guess is required")
		return result
	}

	if len([]rune(guess)) > maxGuessRunes {
		result.AddError("guess", "Guess is too long")
	}
	if strings.ContainsAny(guess, "\n\r\t") {
		result.AddError("guess", "Guess must be a single word")
	}

	return result
}
