package v1

import (
	"net/http"
	"strings"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/service"
	"hometex-storefront/pkg/utils"
)

type ContactHandler struct {
	contact *service.ContactService
}

func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if !decodeJSON(w, r, &msg) {
		return
	}
	if msg.Name == "" || msg.Email == "" || strings.TrimSpace(msg.Message) == "" {
		utils.WriteError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}
	resp, err := h.contact.Send(r.Context(), msg)
	relayMessage(w, r, resp, err)
}

func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if !strings.Contains(req.Email, "@") {
		utils.WriteError(w, http.StatusBadRequest, "A valid email is required")
		return
	}
	resp, err := h.contact.SubscribeNewsletter(r.Context(), req.Email)
	relayMessage(w, r, resp, err)
}
