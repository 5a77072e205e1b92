package v1

import (
	"net/http"
	"strings"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/service"
	"hometex-storefront/pkg/utils"
)

type GiftHandler struct {
	gifts *service.GiftService
}

func NewGiftHandler(gifts *service.GiftService) *GiftHandler {
	return &GiftHandler{gifts: gifts}
}

func (h *GiftHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	resp, err := h.gifts.ListCards(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

func (h *GiftHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var p domain.GiftPurchase
	if !decodeJSON(w, r, &p) {
		return
	}
	if p.GiftCardID == "" || p.RecipientEmail == "" {
		utils.WriteError(w, http.StatusBadRequest, "Gift card and recipient email are required")
		return
	}
	resp, err := h.gifts.Purchase(r.Context(), p)
	relay(w, r, http.StatusCreated, resp, err)
}

func (h *GiftHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		utils.WriteError(w, http.StatusBadRequest, "Gift card code is required")
		return
	}
	resp, err := h.gifts.Redeem(r.Context(), code)
	relay(w, r, http.StatusOK, resp, err)
}

func (h *GiftHandler) Balance(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.URL.Query().Get("code"))
	if code == "" {
		utils.WriteError(w, http.StatusBadRequest, "Gift card code is required")
		return
	}
	resp, err := h.gifts.Balance(r.Context(), code)
	relay(w, r, http.StatusOK, resp, err)
}
