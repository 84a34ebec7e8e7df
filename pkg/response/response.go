package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success bodies are the raw resource rows; only failures get an envelope.
// The unauthorized message is deliberately the same whether the token failed
// verification or merely did not match the claimed owner.

type errBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func BadRequest(c *gin.Context, msg string, details interface{}) {
	c.JSON(http.StatusBadRequest, errBody{Error: msg, Details: details})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, errBody{Error: "unauthorized"})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errBody{Error: "not found"})
}

// Internal hides the cause from the caller; the handler logs it.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, errBody{Error: "internal error"})
}
