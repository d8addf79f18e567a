package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"studysync/internal/application/dto"
	"studysync/internal/application/service"
	appErrors "studysync/internal/pkg/errors"
	"studysync/internal/pkg/logger"
)

// SettingsHandler exposes settings reads/writes and the feature
// toggles over HTTP.
type SettingsHandler struct {
	settingsProvider service.SettingsProvider
	sessionService   service.SessionService
	log              logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(
	settingsProvider service.SettingsProvider,
	sessionService service.SessionService,
	log logger.Logger,
) *SettingsHandler {
	return &SettingsHandler{
		settingsProvider: settingsProvider,
		sessionService:   sessionService,
		log:              log,
	}
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.settingsProvider.GetSettings(c.Request().Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// Update handles PUT /settings. Feature flags are not writable here;
// they only move through the enable/disable endpoints, which run the
// permission and backfill flows.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}
	req.RemindersEnabled = nil
	req.CalendarSyncEnabled = nil

	settings, err := h.settingsProvider.UpdateSettings(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// EnableReminders handles POST /settings/reminders/enable.
func (h *SettingsHandler) EnableReminders(c echo.Context) error {
	if err := h.sessionService.EnableReminders(c.Request().Context()); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "reminders enabled"})
}

// DisableReminders handles POST /settings/reminders/disable.
func (h *SettingsHandler) DisableReminders(c echo.Context) error {
	if err := h.sessionService.DisableReminders(c.Request().Context()); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "reminders disabled"})
}

// EnableCalendarSync handles POST /settings/calendar-sync/enable.
func (h *SettingsHandler) EnableCalendarSync(c echo.Context) error {
	if err := h.sessionService.EnableCalendarSync(c.Request().Context()); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "calendar sync enabled"})
}

// DisableCalendarSync handles POST /settings/calendar-sync/disable.
func (h *SettingsHandler) DisableCalendarSync(c echo.Context) error {
	if err := h.sessionService.DisableCalendarSync(c.Request().Context()); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "calendar sync disabled"})
}

func (h *SettingsHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appErrors.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, appErrors.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, errorBody(err.Error()))
	case errors.Is(err, appErrors.ErrExternalService), errors.Is(err, appErrors.ErrScheduling):
		return c.JSON(http.StatusBadGateway, errorBody(err.Error()))
	default:
		h.log.Error("Unhandled error in settings handler", err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}
}
