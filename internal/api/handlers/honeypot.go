// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scamtrap/honeypot-service/internal/api/dto"
	"github.com/scamtrap/honeypot-service/internal/api/middleware"
	domainerrors "github.com/scamtrap/honeypot-service/internal/domain/errors"
	"github.com/scamtrap/honeypot-service/internal/domain/models"
	"github.com/scamtrap/honeypot-service/internal/services/engine"
)

// HoneypotHandler handles the turn endpoint.
type HoneypotHandler struct {
	engine *engine.Engine
}

// NewHoneypotHandler creates a new HoneypotHandler.
func NewHoneypotHandler(eng *engine.Engine) *HoneypotHandler {
	return &HoneypotHandler{
		engine: eng,
	}
}

// HandleTurn handles POST /turn
// @Summary Process a honeypot turn
// @Description Ingests one incoming message, classifies it, optionally generates a persona reply and extracts intelligence
// @Tags Honeypot
// @Accept json
// @Produce json
// @Param request body dto.TurnRequest true "Turn request"
// @Success 200 {object} dto.TurnResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/honeypot/turn [post]
func (h *HoneypotHandler) HandleTurn(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, domainerrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.engine.HandleTurn(ctx, &engine.TurnInput{
		SessionID: req.SessionID,
		Message: models.Message{
			Sender:    models.Sender(req.Message.Sender),
			Text:      req.Message.Text,
			Timestamp: req.Message.Timestamp,
		},
		Metadata: req.Metadata,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TurnResponse{
		Status:                 "success",
		SessionID:              result.SessionID,
		Reply:                  result.Reply,
		ScamDetected:           result.ScamDetected,
		TotalMessagesExchanged: result.TotalMessagesExchanged,
		Intelligence:           dto.NewIntelligenceResponse(result.Intelligence),
		Metadata:               result.Metadata,
		ShouldStop:             result.ShouldStop,
	})
}
