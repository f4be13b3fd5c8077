package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every API response, successful or not.
type Response struct {
	Status int     `json:"status"`
	Error  *string `json:"error"`
	Data   any     `json:"data"`
}

// OK writes data inside a 200 envelope.
func OK(c echo.Context, data any) error {
	return Respond(c, http.StatusOK, data)
}

// Respond writes data inside an envelope carrying code.
func Respond(c echo.Context, code int, data any) error {
	return c.JSON(code, Response{Status: code, Data: data})
}

// Fail writes an error envelope.
func Fail(c echo.Context, code int, msg string) error {
	return c.JSON(code, Response{Status: code, Error: &msg})
}
