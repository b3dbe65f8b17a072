package responses

import (
	"net/http"

	"github.com/DhavalSuthar-24/ladder/pkg/apperrors"
	"github.com/DhavalSuthar-24/ladder/pkg/logger"
	"github.com/DhavalSuthar-24/ladder/pkg/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessResponse represents a standard success JSON response.
type SuccessResponse struct {
	Status  string      `json:"status"`            // "success"
	Message string      `json:"message,omitempty"` // Optional success message
	Data    interface{} `json:"data"`              // The actual data payload
}

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status    string      `json:"status"`               // "error" or "fail"
	Message   string      `json:"message"`              // Error message
	Code      int         `json:"code"`                 // HTTP status code
	ErrorCode int         `json:"error_code,omitempty"` // Application error code
	Errors    interface{} `json:"errors,omitempty"`     // Field errors or offending values
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error maps an application error to its HTTP status and writes it.
// Errors without a code are logged and reported as 500 without leaking the cause.
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetError(err)
	status := appErr.Code.HTTPStatus()
	message := appErr.Error()

	if status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed",
			zap.Int("error_code", int(appErr.Code)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		message = appErr.Code.Message()
	}

	resp := ErrorResponse{
		Status:    statusText(status),
		Message:   message,
		Code:      status,
		ErrorCode: int(appErr.Code),
	}
	if len(appErr.Details) > 0 && status < http.StatusInternalServerError {
		resp.Errors = appErr.Details
	}
	c.AbortWithStatusJSON(status, resp)
}

// ValidationError sends a 400 for request binding failures
// originating from `c.ShouldBindJSON()` or similar.
func ValidationError(c *gin.Context, err error) {
	message := "Invalid request payload"
	if validator.IsValidationError(err) {
		message = "Validation failed. Please check your input."
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Status:    "error",
		Message:   message,
		Code:      http.StatusBadRequest,
		ErrorCode: int(apperrors.InvalidParams),
		Errors:    validator.ParseError(err),
	})
}

func statusText(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return "fail" // Differentiate client errors from server failures
	}
	return "error"
}
