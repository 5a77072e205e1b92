package v1

import (
	"net/http"

	"hometex-storefront/internal/service"
	"hometex-storefront/pkg/utils"
)

type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) Methods(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payments.Methods(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

// Initiate answers with the gateway URL the browser is redirected to.
func (h *PaymentHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID       string `json:"orderId"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.OrderID == "" || req.PaymentMethod == "" {
		utils.WriteError(w, http.StatusBadRequest, "Order and payment method are required")
		return
	}
	resp, err := h.payments.Initiate(r.Context(), req.OrderID, req.PaymentMethod)
	relay(w, r, http.StatusOK, resp, err)
}

func (h *PaymentHandler) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.payments.Status(r.Context(), r.PathValue("transactionId"))
	relay(w, r, http.StatusOK, resp, err)
}
