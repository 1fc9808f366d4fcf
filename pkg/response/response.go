package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-tool-service/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Health sends the liveness body.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResp{OK: true})
}

// Error renders err as {"detail": ...}. An *errors.HTTPError keeps its status;
// anything else becomes a 500 without leaking the message.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c)
		return
	}

	c.AbortWithStatusJSON(httpErr.Code, ErrResp{
		Detail: httpErr.Message,
		Errors: httpErr.Fields,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrResp{
		Detail: pkgErrors.ErrInternalServerError.Message,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	Error(c, pkgErrors.ErrTooManyRequests)
}
