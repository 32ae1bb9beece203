package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
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

// HandleServiceError maps engine errors onto HTTP statuses. Every error is
// surfaced; nothing is swallowed into a success response.
func HandleServiceError(c *gin.Context, err error) {
	var gatewayErr *GatewayError

	switch {
	case errors.Is(err, ErrTransactionNotFound):
		RespondError(c, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, ErrInvalidTransactionState):
		RespondError(c, http.StatusConflict, "Transaction is not awaiting verification")
	case errors.Is(err, ErrDuplicateTransaction):
		RespondError(c, http.StatusConflict, "Transaction id already exists")
	case errors.Is(err, ErrVersionConflict):
		RespondError(c, http.StatusConflict, "Transaction was modified concurrently, retry")
	case errors.Is(err, ErrSettingsInvalid):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &gatewayErr):
		RespondError(c, http.StatusBadGateway, "Payment was declined by the processor")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
