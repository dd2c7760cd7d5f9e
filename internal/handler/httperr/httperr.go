package httperr

import (
	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// Response is the body of every failed API call. Detail carries the error
// kind clients branch on.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail    any    `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// AbortWithError records err on the gin context for the error middleware and
// writes the public response. err must not be nil.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.RequestID = c.Writer.Header().Get(requestIDHeader)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
