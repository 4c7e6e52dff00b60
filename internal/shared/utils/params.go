package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PathID parses an integer id path parameter. ok is false when the segment is
// not a valid integer, which callers treat as an unrecognized path rather
// than a missing resource.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
