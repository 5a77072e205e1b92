package v1

import (
	"net/http"
	"strconv"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/service"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/utils"
)

// LocationHandler serves the visitor's saved location and the delivery areas
// used by the checkout address form.
type LocationHandler struct {
	locationUC *usecase.LocationUsecase
	areas      *service.LocationService
}

func NewLocationHandler(uc *usecase.LocationUsecase, areas *service.LocationService) *LocationHandler {
	return &LocationHandler{locationUC: uc, areas: areas}
}

// GetLocation answers with null data when nothing is saved.
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	info, err := h.locationUC.Current(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "data": info})
}

func (h *LocationHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	info, err := h.locationUC.Detect(r.Context(), req.Latitude, req.Longitude)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, info)
}

func (h *LocationHandler) SaveLocation(w http.ResponseWriter, r *http.Request) {
	var info domain.LocationInfo
	if !decodeJSON(w, r, &info) {
		return
	}
	if err := h.locationUC.Save(r.Context(), info); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, info)
}

func (h *LocationHandler) Divisions(w http.ResponseWriter, r *http.Request) {
	resp, err := h.areas.Divisions(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

func (h *LocationHandler) Districts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.areas.Districts(r.Context(), r.URL.Query().Get("division_id"))
	relay(w, r, http.StatusOK, resp, err)
}

func (h *LocationHandler) Upazilas(w http.ResponseWriter, r *http.Request) {
	resp, err := h.areas.Upazilas(r.Context(), r.URL.Query().Get("district_id"))
	relay(w, r, http.StatusOK, resp, err)
}

// ShippingCharge quotes delivery to a district for a cart subtotal.
func (h *LocationHandler) ShippingCharge(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	district := q.Get("district")
	if district == "" {
		utils.WriteError(w, http.StatusBadRequest, "District is required")
		return
	}
	subtotal, err := strconv.ParseFloat(q.Get("subtotal"), 64)
	if q.Get("subtotal") != "" && (err != nil || subtotal < 0) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid subtotal")
		return
	}
	resp, err := h.areas.ShippingCharge(r.Context(), district, subtotal)
	relay(w, r, http.StatusOK, resp, err)
}
