package v1

import (
	"net/http"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/utils"
)

type WishlistHandler struct {
	wishlistUC *usecase.WishlistUsecase
	catalogUC  *usecase.CatalogUsecase
}

func NewWishlistHandler(wishlistUC *usecase.WishlistUsecase, catalogUC *usecase.CatalogUsecase) *WishlistHandler {
	return &WishlistHandler{wishlistUC: wishlistUC, catalogUC: catalogUC}
}

type WishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishlistUC.Items(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, items)
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req WishlistRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.catalogUC.Product(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	added, err := h.wishlistUC.Toggle(r.Context(), product.Ref())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, domain.WishlistCheck{InWishlist: added})
}

func (h *WishlistHandler) Check(w http.ResponseWriter, r *http.Request) {
	in, err := h.wishlistUC.Contains(r.Context(), r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, domain.WishlistCheck{InWishlist: in})
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishlistUC.Remove(r.Context(), r.PathValue("productId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, items)
}

func (h *WishlistHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishlistUC.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, items)
}
