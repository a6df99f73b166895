package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the API's error envelope: {"status":"error","message":...}.
// The shape is fixed by the existing clients of this service.
type Response struct {
	Code    int    `json:"-"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func New(code int, msg string) Response {
	return Response{Code: code, Status: "error", Message: msg}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, code int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(code, msg)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(code, resp)
}
