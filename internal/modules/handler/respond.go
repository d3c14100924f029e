package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Alaebelamkaddame/content-management/internal/modules/serializer"
	"github.com/Alaebelamkaddame/content-management/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// svcErr performs the single error-to-status translation per route.
func svcErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), nil))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, serializer.ParamErr("already exists", err))
	case errors.Is(err, service.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid reference", err))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("invalid credentials"))
	default:
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
	}
}

// pathUUID parses a path parameter as a UUID, aborting with 400 before any
// store access when malformed.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("malformed "+name, err))
		return uuid.Nil, false
	}
	return id, true
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
