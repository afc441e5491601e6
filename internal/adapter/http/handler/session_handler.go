package handler

import (
	"qr-register/internal/adapter/http/dto"
	"qr-register/internal/core/ports"
	"qr-register/pkg/apperror"
	"qr-register/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the operator's scan affordances.
type SessionHandler struct {
	sessionSvc ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionSvc ports.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// StartScan handles POST /api/v1/session/start. Starting while a scan is in
// flight is a no-op and still reports scanning.
func (h *SessionHandler) StartScan(c *gin.Context) {
	if err := h.sessionSvc.StartScan(); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SessionStatusResponse{Scanning: h.sessionSvc.Scanning()})
}

// StopScan handles POST /api/v1/session/stop.
func (h *SessionHandler) StopScan(c *gin.Context) {
	h.sessionSvc.StopScan()
	response.OK(c, dto.SessionStatusResponse{Scanning: h.sessionSvc.Scanning()})
}

// Rebind handles PUT /api/v1/session/scanner.
func (h *SessionHandler) Rebind(c *gin.Context) {
	var req dto.RebindRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.sessionSvc.Rebind(ports.DecoderConfig{Port: req.Port, Baud: req.Baud}); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SessionStatusResponse{Scanning: h.sessionSvc.Scanning()})
}
