package api

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/mariaschitik/ru-pedantle/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrorCodeArticleOutOfRange ErrorCode = "ARTICLE_OUT_OF_RANGE"
	ErrorCodeGameNotFound      ErrorCode = "GAME_NOT_FOUND"
	ErrorCodeRoundFinished     ErrorCode = "ROUND_FINISHED"
	ErrorCodeInvalidJSON       ErrorCode = "INVALID_JSON"
	ErrorCodeRequestTooLarge   ErrorCode = "REQUEST_TOO_LARGE"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendGameNotFoundError sends a standardized game not found error
func SendGameNotFoundError(c *gin.Context, gameID string) {
	SendError(c, http.StatusNotFound, ErrorCodeGameNotFound,
		"Game '"+gameID+"' not found")
}

// SendArticleOutOfRangeError sends a standardized out of range error
func SendArticleOutOfRangeError(c *gin.Context, requested, count int) {
	SendError(c, http.StatusBadRequest, ErrorCodeArticleOutOfRange,
		"Article "+strconv.Itoa(requested)+" is out of range, expected 1 to "+strconv.Itoa(count))
}

// SendRoundFinishedError sends a standardized round finished error
func SendRoundFinishedError(c *gin.Context, gameID string) {
	SendError(c, http.StatusConflict, ErrorCodeRoundFinished,
		"Game '"+gameID+"' is already won; replay it or start a new one")
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		SendError(c, http.StatusRequestEntityTooLarge, ErrorCodeRequestTooLarge,
			"Request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
		return
	}
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}

// SendGameError maps an error returned by the game manager onto a response.
func SendGameError(c *gin.Context, gameID, operation string, err error) {
	var rangeErr *internalErrors.OutOfRangeError
	var validationErr *internalErrors.ValidationError

	switch {
	case stderrors.As(err, &rangeErr):
		SendArticleOutOfRangeError(c, rangeErr.Requested, rangeErr.Count)
	case stderrors.Is(err, internalErrors.ErrGameNotFound):
		SendGameNotFoundError(c, gameID)
	case stderrors.Is(err, internalErrors.ErrRoundFinished):
		SendRoundFinishedError(c, gameID)
	case stderrors.As(err, &validationErr):
		result := &ValidationResult{Valid: true}
		result.AddError(validationErr.Field, validationErr.Message)
		SendStructuredValidationError(c, result)
	default:
		SendInternalError(c, operation, err)
	}
}
