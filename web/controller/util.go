package controller

import (
	"net/http"

	"tbs-api/logger"
	"tbs-api/web/entity"
	"tbs-api/web/service"

	"github.com/gin-gonic/gin"
)

// jsonError sends a structured error body with the given status code.
func jsonError(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, entity.ApiError{
		Code:    statusCode,
		Status:  http.StatusText(statusCode),
		Message: msg,
	})
}

// jsonMsg sends a plain confirmation message.
func jsonMsg(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, entity.Msg{Message: msg})
}

// serviceError maps a service failure onto its HTTP status code. Unknown
// errors are logged and surfaced as a generic 500.
func serviceError(c *gin.Context, err error) {
	var status int
	switch err {
	case service.ErrInvalidCredentials:
		status = http.StatusUnauthorized
	case service.ErrUsernameTaken:
		status = http.StatusConflict
	case service.ErrSpecializationExists, service.ErrCourseItemExists:
		status = http.StatusBadRequest
	case service.ErrUserNotFound, service.ErrSpecializationNotFound, service.ErrCourseItemNotFound:
		status = http.StatusNotFound
	default:
		logger.Warning("request failed:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error.")
		return
	}
	jsonError(c, status, err.Error())
}
