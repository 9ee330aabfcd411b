package handlers

import (
	"github.com/gin-gonic/gin"
)

// attachError records err on the gin context so the request log carries the
// failure reason. c.Error returns *gin.Error rather than error, hence the
// blank assignment.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError writes the standard {"error": ...} body and records err on
// the context for the request log.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondErrorWithDetails adds a details field, used for validation failures.
func respondErrorWithDetails(c *gin.Context, status int, message string, details any, err error) { //nolint:unparam
	attachError(c, err)
	c.JSON(status, gin.H{"error": message, "details": details})
}
