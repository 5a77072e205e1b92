package v1

import (
	"net/http"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/service"
	"hometex-storefront/pkg/utils"
)

// AlertHandler manages back-in-stock notifications of the signed-in user.
type AlertHandler struct {
	alerts *service.AlertService
}

func NewAlertHandler(alerts *service.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.alerts.ListRestock(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

func (h *AlertHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, domain.ErrInvalidProduct.Error())
		return
	}
	resp, err := h.alerts.SubscribeRestock(r.Context(), domain.RestockAlert{
		ProductID: domain.ID(req.ProductID),
		Email:     req.Email,
		Phone:     req.Phone,
	})
	relay(w, r, http.StatusCreated, resp, err)
}

func (h *AlertHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	msg, err := h.alerts.CancelRestock(r.Context(), r.PathValue("id"))
	relayMessage(w, r, msg, err)
}
