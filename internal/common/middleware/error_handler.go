package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"user-api/internal/common/errors"
	"user-api/internal/common/logger"
)

const requestIDKey = "request_id"

// ErrorResponse is the JSON body of every failed request. Details, stack and
// cause are only filled in development mode.
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      errors.ErrorCode       `json:"code"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     string                 `json:"cause,omitempty"`
	Stack     []string               `json:"stack,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id"`
	Path      string                 `json:"path,omitempty"`
	Method    string                 `json:"method,omitempty"`
}

// RequestID propagates X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Recovery turns panics into a 500 error response.
func Recovery(devMode bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		stack := string(debug.Stack())

		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", stack).
			Msg("Panic recovered")

		appErr := errors.New(errors.ErrCodeInternal, "internal server error").
			WithDetail("panic", fmt.Sprintf("%v", recovered))

		c.AbortWithStatusJSON(http.StatusInternalServerError, buildResponse(c, appErr, devMode))
	})
}

// HandleErrors renders the last error attached with c.Error once the handler
// chain returns. Handlers that already wrote a body only get their error logged.
func HandleErrors(devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := ToAppError(c.Errors.Last().Err)
		logError(c, appErr)

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(StatusCode(appErr), buildResponse(c, appErr, devMode))
	}
}

// NotFound is the fallback for unmatched routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(errors.NewNotFoundError("route").
			WithDetail("path", c.Request.URL.Path))
	}
}

// ToAppError returns the AppError in err's chain or wraps err as an internal error.
func ToAppError(err error) *errors.AppError {
	if appErr, ok := errors.As(err); ok {
		return appErr
	}
	return errors.Wrap(err, errors.ErrCodeInternal, "internal server error")
}

// StatusCode maps an error code to its HTTP status.
func StatusCode(appErr *errors.AppError) int {
	switch appErr.Code {
	case errors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case errors.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeConflict:
		return http.StatusConflict
	case errors.ErrCodeCacheError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func buildResponse(c *gin.Context, appErr *errors.AppError, devMode bool) ErrorResponse {
	requestID := GetRequestID(c)
	appErr.WithRequestID(requestID).
		WithContext("path", c.Request.URL.Path).
		WithContext("method", c.Request.Method)

	resp := ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		Timestamp: time.Now(),
		RequestID: requestID,
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
	}
	if devMode {
		resp.Details = appErr.Details
		resp.Stack = appErr.Stack
		if appErr.Cause != nil {
			resp.Cause = appErr.Cause.Error()
		}
	}
	return resp
}

func logError(c *gin.Context, appErr *errors.AppError) {
	var event *zerolog.Event
	msg := "Application error occurred"
	switch {
	case appErr.IsInternal():
		event, msg = logger.Error(), "Internal error occurred"
	case appErr.IsUnauthorized():
		event, msg = logger.Warn(), "Unauthorized access attempt"
	case appErr.IsValidation():
		event, msg = logger.Info(), "Validation error"
	case appErr.IsNotFound():
		event, msg = logger.Info(), "Resource not found"
	default:
		event = logger.Warn()
	}

	event.
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message).
		Fields(appErr.Details).
		Err(appErr.Cause).
		Msg(msg)
}

// GetRequestID returns the id set by RequestID or "unknown".
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}
