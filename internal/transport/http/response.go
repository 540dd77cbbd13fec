package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON reply.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries a stable machine code plus a human message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func success(c echo.Context, status int, data any) error {
	return c.JSON(status, Response{Success: true, Data: data})
}

func failure(c echo.Context, status int, code, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return c.JSON(status, Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
	})
}

func badRequest(c echo.Context, code, message string) error {
	return failure(c, http.StatusBadRequest, code, message)
}
