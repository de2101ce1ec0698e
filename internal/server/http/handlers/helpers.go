package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickbite/orderservice/internal/domain/errors"
	"github.com/quickbite/orderservice/internal/server/http/dto"
)

// writeError maps domain error classes to HTTP statuses without leaking
// internals for unexpected failures.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
	case errors.Is(err, domainErrors.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.MessageResponse{Message: domainErrors.ErrUnavailable.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "an error occurred while processing the order"})
	}
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid " + name})
		return 0, false
	}
	return v, true
}
