package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/DSI-OMS-RPA/email-notifier/internal/pkg/errors"
)

// Response is the uniform JSON envelope for the HTTP surface.
type Response struct {
	Code    int         `json:"code"`              // business error code (0 means success)
	Message string      `json:"message,omitempty"` // human-readable message
	Data    interface{} `json:"data"`              // payload, {} when empty
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = struct{}{}
	}
	c.JSON(http.StatusOK, Response{
		Code:    apperrors.Success,
		Message: "",
		Data:    data,
	})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Error writes an error response with the given HTTP status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{
		Code:    httpStatus,
		Message: message,
		Data:    struct{}{},
	})
}

// AppError maps a pipeline error to its HTTP status and code.
func AppError(c *gin.Context, err error) {
	code := apperrors.ExtractCode(err)
	c.JSON(apperrors.GetHTTPStatus(code), Response{
		Code:    code,
		Message: apperrors.GetMessage(code),
		Data:    gin.H{"details": apperrors.GetDetails(err)},
	})
}
