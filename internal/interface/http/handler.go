// Package handlers translates typed application outcomes into wire-level
// responses. Status-code mapping lives here and nowhere else.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thriftly-app/thriftly-api/pkg/response"
)

// pathID parses the :id path parameter. Non-numeric and negative ids are
// rejected before any I/O.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		response.BadRequest(c, "invalid id", nil)
		return 0, false
	}
	return id, true
}
