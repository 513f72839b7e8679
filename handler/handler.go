package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harikrish1993-phk/telvel/middleware"
)

// internalError answers a 500. Production deployments get a generic message
// only; elsewhere the cause is included to ease debugging.
func internalError(c *gin.Context, production bool, err error) {
	slog.Error("request failed",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestID(c),
	)

	message := "An unexpected error occurred"
	if !production {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}

// pathID parses the :id route parameter. On failure it writes a 400 and
// reports false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
