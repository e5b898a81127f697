package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"usersvc/internal/delivery/http/response"
)

// Root is the service banner endpoint.
func Root(c echo.Context) error {
	return response.Msg(c, http.StatusOK, "User Service running!")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
