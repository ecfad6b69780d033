package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "requestID"

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindAuth, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError is FromError for middleware: the handler chain stops.
func AbortWithError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Abort(c, StatusFor(be.Kind), be.Code, be.Message)
		return
	}
	FromError(c, err)
	c.Abort()
}

// FromError writes err as a JSON error response. Business errors keep their
// code and message; anything else is logged and reported as internal_error.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, StatusFor(be.Kind), be.Code, be.Message)
		return
	}

	_ = c.Error(err)
	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString(RequestIDKey),
		"error", err,
	)
	Internal(c, "internal_error", "Internal server error")
}
