package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error payload shape returned by every failing endpoint
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponse writes an error payload with the given status
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// BadRequestResponse writes a 400 error payload
func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

// UnauthorizedResponse writes a 401 error payload
func UnauthorizedResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message)
}

// NotFoundResponse writes a 404 error payload
func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

// InternalServerErrorResponse writes a 500 error payload
func InternalServerErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}

// GetIDParam parses the :id path parameter as an unsigned integer
func GetIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
