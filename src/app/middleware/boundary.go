package middleware

import (
	"github.com/gin-gonic/gin"

	"jokester/src/app/http/response"
)

// Boundary renders errors that handlers attach with c.Error and leave
// unanswered. Unauthorized errors get the login boundary, missing records
// the not found page, and everything else the generic error page.
//
// Handlers that already wrote a response are left alone; their errors are
// only logged by Logging.
func Boundary() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		response.FromDomainError(c, c.Errors.Last().Err, GetRequestID(c))
	}
}
