package v1

import (
	"net/http"
	"strconv"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/service"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/utils"
)

type OrderHandler struct {
	trackingUC *usecase.TrackingUsecase
	orders     *service.OrderService
}

func NewOrderHandler(uc *usecase.TrackingUsecase, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{trackingUC: uc, orders: orders}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	resp, err := h.orders.List(r.Context(), page, q.Get("status"))
	relay(w, r, http.StatusOK, resp, err)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := h.orders.Get(r.Context(), r.PathValue("id"))
	relay(w, r, http.StatusOK, resp, err)
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var checkout domain.CheckoutRequest
	if !decodeJSON(w, r, &checkout) {
		return
	}
	if len(checkout.Items) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Order has no items")
		return
	}
	if checkout.PaymentMethod == "" {
		utils.WriteError(w, http.StatusBadRequest, "Payment method is required")
		return
	}
	resp, err := h.orders.Create(r.Context(), checkout)
	relay(w, r, http.StatusCreated, resp, err)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	resp, err := h.orders.Cancel(r.Context(), r.PathValue("id"), req.Reason)
	relay(w, r, http.StatusOK, resp, err)
}

func (h *OrderHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.trackingUC.TrackInvoice(r.Context(), r.PathValue("invoice"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, result)
}

func (h *OrderHandler) TrackParcel(w http.ResponseWriter, r *http.Request) {
	status, err := h.trackingUC.TrackCode(r.Context(), r.PathValue("code"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, status)
}
