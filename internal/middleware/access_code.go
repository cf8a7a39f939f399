package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AccessCodeHeader = "X-Access-Code"
	AccessCodeQuery  = "access_code"
)

// AccessCodeSource yields the code the request must present. It is read on
// every request because a reset rotates it.
type AccessCodeSource interface {
	AccessCode() string
}

// AccessCode rejects requests whose X-Access-Code header (or access_code
// query parameter) does not match the board's current code.
func AccessCode(src AccessCodeSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.GetHeader(AccessCodeHeader)
		if code == "" {
			code = c.Query(AccessCodeQuery)
		}

		expected := src.AccessCode()
		if code == "" || subtle.ConstantTimeCompare([]byte(code), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access code"})
			return
		}

		c.Next()
	}
}
