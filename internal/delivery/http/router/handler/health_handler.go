package handler

import (
	"net/http"
	"time"

	"kitchen/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	}, "Service is healthy")
}

// Root greets API consumers hitting the bare prefix.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Welcome to Clouds Kitchen API",
	}, "Welcome")
}
