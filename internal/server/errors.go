package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ivolkov/salesoffice/internal/repository"
	"go.uber.org/zap"
)

// abortWithError translates repository errors into HTTP status codes.
// Unexpected errors are logged and answered with a generic message so
// internals never leak to callers.
func (s *Server) abortWithError(c *gin.Context, err error) {
	var vErr *repository.ValidationError

	switch {
	case repository.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, repository.ErrInvalidSortField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNoReferenceRows):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// idParam parses the :id path parameter. A malformed id answers 400 and
// returns false.
func (s *Server) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// pageParams parses the optional skip/limit query parameters with the
// 0/100 defaults.
func (s *Server) pageParams(c *gin.Context) (skip, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip"})
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, 0, false
	}
	return skip, limit, true
}

// countParam parses the count query parameter for generate endpoints
func (s *Server) countParam(c *gin.Context) (int, bool) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil || count <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
		return 0, false
	}
	return count, true
}
