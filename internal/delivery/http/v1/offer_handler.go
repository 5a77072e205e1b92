package v1

import (
	"net/http"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/utils"
)

type OfferHandler struct {
	offerUC *usecase.OfferUsecase
}

func NewOfferHandler(uc *usecase.OfferUsecase) *OfferHandler {
	return &OfferHandler{offerUC: uc}
}

type offerRequest struct {
	ProductID string  `json:"productId"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Message   string  `json:"message"`
}

func (h *OfferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	offer, err := h.offerUC.Submit(r.Context(), domain.Offer{
		ProductID: domain.ID(req.ProductID),
		Price:     domain.Amount(req.Price),
		Quantity:  req.Quantity,
		Message:   req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusCreated, offer)
}

func (h *OfferHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.offerUC.Status(r.Context(), r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, map[string]string{"status": status})
}
