package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger installs the process logger; 5xx responses are logged here so
// handlers don't have to.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response is the uniform envelope every endpoint returns (list endpoints
// excepted, they respond with bare top-level keys).
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func OK(message string, data interface{}) Response {
	return Response{Status: http.StatusOK, Message: message, Data: data}
}

func Created(message string, data interface{}) Response {
	return Response{Status: http.StatusCreated, Message: message, Data: data}
}

func Err(status int, message string, err error) Response {
	res := Response{
		Status:  status,
		Message: message,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Int("status", status), zap.String("message", message), zap.Error(err))
	}
	return res
}

func DBErr(message string, err error) Response {
	if message == "" {
		message = "database error"
	}
	return Err(http.StatusInternalServerError, message, err)
}

func ParamErr(message string, err error) Response {
	if message == "" {
		message = "parameter error"
	}
	return Err(http.StatusBadRequest, message, err)
}

func AuthErr(message string) Response {
	if message == "" {
		message = "authentication error"
	}
	return Err(http.StatusUnauthorized, message, nil)
}

func NotFoundErr(message string, err error) Response {
	if message == "" {
		message = "not found"
	}
	return Err(http.StatusNotFound, message, err)
}
