package utils

import "github.com/gin-gonic/gin"

// RespondWithError aborts the request with the wire error shape every
// endpoint uses.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"ok": false, "error": message})
}
