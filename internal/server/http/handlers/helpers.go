package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PathID parses a numeric identifier from the named path parameter. On a
// malformed value it writes 400 and reports false.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
