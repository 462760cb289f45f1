package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as JSON with its HTTP status. Anything that is not
// an AppError is collapsed to a generic 500.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError attempts to convert err into *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
