package handlers

import (
	contactdto "github.com/webbplats/site/internal/api/dto/v1/contact"
	"github.com/webbplats/site/internal/contact"
	"github.com/webbplats/site/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	gate *contact.Gate
}

func NewContactHandler(gate *contact.Gate) *ContactHandler {
	return &ContactHandler{gate: gate}
}

// Submit screens a contact form submission and relays it when accepted.
// The body is decoded by the gate, after the rate limit check.
func (h *ContactHandler) Submit(c *gin.Context) {
	out := h.gate.Process(c.Request.Context(), utils.GetRealIP(c), c.Request.Body)

	c.JSON(out.Status, contactdto.ContactResponse{
		Success: out.Success(),
		Message: out.Message,
	})
}
