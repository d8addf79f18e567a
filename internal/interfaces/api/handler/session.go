package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"studysync/internal/application/dto"
	"studysync/internal/application/service"
	appErrors "studysync/internal/pkg/errors"
	"studysync/internal/pkg/logger"
)

// SessionHandler exposes the study session operations over HTTP.
type SessionHandler struct {
	sessionService service.SessionService
	log            logger.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService, log logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		log:            log,
	}
}

// Create handles POST /sessions.
func (h *SessionHandler) Create(c echo.Context) error {
	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, errorBody("title is required"))
	}

	session, err := h.sessionService.CreateStudySession(c.Request().Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// Update handles PUT /sessions/:id.
func (h *SessionHandler) Update(c echo.Context) error {
	var req dto.UpdateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	session, err := h.sessionService.UpdateStudySession(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Delete handles DELETE /sessions/:id.
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.sessionService.DeleteStudySession(c.Request().Context(), c.Param("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Upcoming handles GET /sessions/upcoming.
func (h *SessionHandler) Upcoming(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, errorBody("limit must be a non-negative integer"))
		}
		limit = n
	}

	sessions, err := h.sessionService.GetUpcomingSessions(c.Request().Context(), limit)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": dto.ToSessionResponseList(sessions),
	})
}

// SyncTimezone handles POST /sync/timezone.
func (h *SessionHandler) SyncTimezone(c echo.Context) error {
	if err := h.sessionService.SyncWithTimezone(c.Request().Context()); err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "timezone sync complete"})
}

// mapError converts application errors to HTTP responses.
func (h *SessionHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appErrors.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, appErrors.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, errorBody(err.Error()))
	case errors.Is(err, appErrors.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, appErrors.ErrExternalService), errors.Is(err, appErrors.ErrScheduling):
		return c.JSON(http.StatusBadGateway, errorBody(err.Error()))
	default:
		h.log.Error("Unhandled error in session handler", err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
