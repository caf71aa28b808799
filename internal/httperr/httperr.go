package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the wire shape of every error this API returns. Detail
// carries the human-readable message; Fields carries per-field
// validation messages when a request body fails validation.
type HTTPError struct {
	Code   string            `json:"error"`
	Detail string            `json:"detail,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, detail string) {
	c.JSON(status, HTTPError{
		Code:   code,
		Detail: detail,
	})
}

func BadRequest(c *gin.Context, code, detail string) {
	Write(c, http.StatusBadRequest, code, detail)
}

func NotFound(c *gin.Context, code, detail string) {
	Write(c, http.StatusNotFound, code, detail)
}

func Conflict(c *gin.Context, code, detail string) {
	Write(c, http.StatusConflict, code, detail)
}

func Internal(c *gin.Context, code, detail string) {
	Write(c, http.StatusInternalServerError, code, detail)
}

func Unauthorized(c *gin.Context, code, detail string) {
	Write(c, http.StatusUnauthorized, code, detail)
}

func TooManyRequests(c *gin.Context, code, detail string) {
	Write(c, http.StatusTooManyRequests, code, detail)
}

// Validation writes a 400 carrying per-field messages.
func Validation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:   "validation_error",
		Fields: fields,
	})
}
