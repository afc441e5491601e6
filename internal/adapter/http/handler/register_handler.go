package handler

import (
	"qr-register/internal/adapter/http/dto"
	"qr-register/internal/core/ports"
	"qr-register/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegisterHandler exposes the register's read side and the per-line remove
// affordance.
type RegisterHandler struct {
	registerSvc ports.RegisterService
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(registerSvc ports.RegisterService) *RegisterHandler {
	return &RegisterHandler{registerSvc: registerSvc}
}

// GetState handles GET /api/v1/state.
func (h *RegisterHandler) GetState(c *gin.Context) {
	response.OK(c, dto.NewStateResponse(h.registerSvc.Snapshot()))
}

// RemoveLine handles DELETE /api/v1/cart/lines/:id. Removing an absent line
// is not an error; the response carries the resulting state either way.
func (h *RegisterHandler) RemoveLine(c *gin.Context) {
	h.registerSvc.RemoveLine(c.Param("id"))
	response.OK(c, dto.NewStateResponse(h.registerSvc.Snapshot()))
}
