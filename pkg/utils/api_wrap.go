package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service error taxonomy to a single user-facing
// message and status. Diagnostic detail is logged, never returned.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, ErrAINotConfigured):
		log.Printf("AI configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "AI service is not configured properly")
	case errors.Is(err, ErrAICallFailed):
		log.Printf("AI call error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate travel plan. Please try again.")
	case errors.Is(err, ErrInvalidAIOutput):
		log.Printf("AI output error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate valid trip data. Please try again.")
	case errors.Is(err, ErrPersistenceFailed):
		log.Printf("Persistence error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to save trip data. Please try again.")
	case errors.Is(err, ErrPaymentLinkFailed):
		log.Printf("Payment link error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to create payment link. Please try again.")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
