package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for every JSON reply.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// Err builds an error response. Error detail is only echoed outside release
// mode so internals never leak to callers in production.
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// ForbiddenErr
func ForbiddenErr(msg string) Response {
	if msg == "" {
		msg = "forbidden"
	}
	return Err(http.StatusForbidden, msg, nil)
}

// NotFoundErr
func NotFoundErr(msg string) Response {
	if msg == "" {
		msg = "not found"
	}
	return Err(http.StatusNotFound, msg, nil)
}
