package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bardabar-be-svc/internal/service"
	"bardabar-be-svc/internal/upload"
	"bardabar-be-svc/pkg/utils"
)

// respondError maps service failures onto the HTTP error surface. Every
// body keeps the {"error": message} shape.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, upload.ErrInvalidDataURL):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		utils.UnauthorizedResponse(c, "Unauthorized: Admin access required")
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.NotFoundResponse(c, notFoundMessage)
	default:
		utils.InternalServerErrorResponse(c, err.Error())
	}
}
