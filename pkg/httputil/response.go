package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad007-lin/PasswordChecker/pkg/errors"
)

// Response wraps all API responses.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error is the wire form of an application error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondWithSuccess sends a 200 envelope around data.
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error envelope. Application errors choose
// their own status and expose their code and message; anything else
// collapses to an opaque 500.
func RespondWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	wire := &Error{
		Code:    int(errors.ErrInternal),
		Message: "internal server error",
	}

	if appErr, ok := errors.AsAppError(err); ok {
		status = appErr.HTTPStatus()
		wire.Code = int(appErr.Code)
		wire.Message = appErr.Message
	}

	c.JSON(status, Response{
		Success: false,
		Error:   wire,
	})
}
