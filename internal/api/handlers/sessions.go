// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scamtrap/honeypot-service/internal/api/dto"
	"github.com/scamtrap/honeypot-service/internal/api/middleware"
	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/services/store"
)

// SessionsHandler handles the analyst read endpoints.
type SessionsHandler struct {
	store *store.Store
}

// NewSessionsHandler creates a new SessionsHandler.
func NewSessionsHandler(st *store.Store) *SessionsHandler {
	return &SessionsHandler{
		store: st,
	}
}

// GetSession handles GET /sessions/{sessionId}
// @Summary Get a session
// @Description Retrieves the full session record including conversation and intelligence
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Session
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/honeypot/sessions/{sessionId} [get]
func (h *SessionsHandler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sessionId")

	session, err := h.store.Get(ctx, sessionID)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	if session == nil {
		middleware.HandleError(c, domainerrors.NewNotFoundError("session", sessionID))
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListEvents handles GET /sessions/{sessionId}/events
// @Summary List turn events
// @Description Retrieves per-turn audit events for a session, newest first
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param limit query int false "Maximum number of events" default(50) minimum(1) maximum(100)
// @Param skip query int false "Offset for pagination" default(0) minimum(0)
// @Success 200 {object} dto.ListEventsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/honeypot/sessions/{sessionId}/events [get]
func (h *SessionsHandler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Param("sessionId")

	var req dto.ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleError(c, domainerrors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	if req.Limit == 0 {
		req.Limit = 50
	}

	events, err := h.store.ListEvents(ctx, sessionID, req.Limit, req.Skip)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListEventsResponse{
		Events: events,
		Limit:  req.Limit,
		Skip:   req.Skip,
	})
}
