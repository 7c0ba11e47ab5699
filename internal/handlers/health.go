package handlers

import (
	"net/http"
	"time"

	"github.com/codersbay-nikhil/json-test/internal/models"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the HTTP layer is up. The store is not consulted.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: models.FormatISO(time.Now()),
	})
}

// endpoints lists the routes advertised by Root
var endpoints = map[string]string{
	"POST /api/save":  "Save JSON data to MongoDB",
	"GET /api/health": "Health check",
}

func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, models.RootResponse{
		Message:   "JSON Save Backend API",
		Endpoints: endpoints,
	})
}
