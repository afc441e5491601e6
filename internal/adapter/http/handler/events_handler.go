package handler

import (
	"io"

	"qr-register/internal/adapter/view"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams render events and audio cues to attached displays.
type EventsHandler struct {
	hub *view.Hub
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(hub *view.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream handles GET /api/v1/events as server-sent events. The subscription
// lives as long as the client connection.
func (h *EventsHandler) Stream(c *gin.Context) {
	ch, cancel := h.hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, ev.Data)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
