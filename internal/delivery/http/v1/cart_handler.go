package v1

import (
	"net/http"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/utils"
)

type CartHandler struct {
	cartUC    *usecase.CartUsecase
	catalogUC *usecase.CatalogUsecase
}

func NewCartHandler(cartUC *usecase.CartUsecase, catalogUC *usecase.CatalogUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC, catalogUC: catalogUC}
}

type cartResponse struct {
	Items   []domain.CartItem  `json:"items"`
	Summary domain.CartSummary `json:"summary"`
}

type cartLineRequest struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (req cartLineRequest) key() domain.CartLineKey {
	return domain.CartLineKey{ProductID: req.ProductID, Color: req.Color, Size: req.Size}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.cartUC.Items(r.Context())
	h.respond(w, r, items, err)
}

// AddItem prices the line from the catalog, never from the request body.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := h.catalogUC.Product(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := h.cartUC.Add(r.Context(), product.Ref(), req.Quantity, req.Color, req.Size)
	h.respond(w, r, items, err)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	items, err := h.cartUC.SetQuantity(r.Context(), req.key(), req.Quantity)
	h.respond(w, r, items, err)
}

func (h *CartHandler) IncrementItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	items, err := h.cartUC.Increment(r.Context(), req.key())
	h.respond(w, r, items, err)
}

func (h *CartHandler) DecrementItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	items, err := h.cartUC.Decrement(r.Context(), req.key())
	h.respond(w, r, items, err)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	items, err := h.cartUC.Remove(r.Context(), req.key())
	h.respond(w, r, items, err)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartUC.Clear(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Cart cleared")
}

func (h *CartHandler) RefreshCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.cartUC.Refresh(r.Context())
	h.respond(w, r, items, err)
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, items []domain.CartItem, err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	utils.WriteData(w, http.StatusOK, cartResponse{Items: items, Summary: usecase.SummarizeCart(items)})
}
