package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"studysync/internal/interfaces/api/handler"
	"studysync/internal/pkg/logger"
)

// Config holds the dependencies for the router.
type Config struct {
	SessionHandler  *handler.SessionHandler
	SettingsHandler *handler.SettingsHandler
	Logger          logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	// Use custom logger that integrates with our logger interface
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Sessions
	e.POST("/sessions", cfg.SessionHandler.Create)
	e.GET("/sessions/upcoming", cfg.SessionHandler.Upcoming)
	e.PUT("/sessions/:id", cfg.SessionHandler.Update)
	e.DELETE("/sessions/:id", cfg.SessionHandler.Delete)
	e.POST("/sync/timezone", cfg.SessionHandler.SyncTimezone)

	// Settings and feature toggles
	e.GET("/settings", cfg.SettingsHandler.Get)
	e.PUT("/settings", cfg.SettingsHandler.Update)
	e.POST("/settings/reminders/enable", cfg.SettingsHandler.EnableReminders)
	e.POST("/settings/reminders/disable", cfg.SettingsHandler.DisableReminders)
	e.POST("/settings/calendar-sync/enable", cfg.SettingsHandler.EnableCalendarSync)
	e.POST("/settings/calendar-sync/disable", cfg.SettingsHandler.DisableCalendarSync)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
