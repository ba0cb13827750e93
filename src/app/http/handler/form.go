package handler

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

// postFormText returns a submitted field. ok is false when the field is
// missing or isn't text Postgres can store (invalid UTF-8 or NUL bytes).
func postFormText(c *gin.Context, key string) (value string, ok bool) {
	value, ok = c.GetPostForm(key)
	if !ok || !utf8.ValidString(value) || strings.ContainsRune(value, 0) {
		return value, false
	}
	return value, true
}
