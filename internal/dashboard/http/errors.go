package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortBadRequest rejects a request whose form or body cannot be bound.
func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
}
