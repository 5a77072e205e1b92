package v1

import (
	"net/http"

	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/utils"
)

type RecentlyViewedHandler struct {
	recentUC *usecase.RecentlyViewedUsecase
}

func NewRecentlyViewedHandler(uc *usecase.RecentlyViewedUsecase) *RecentlyViewedHandler {
	return &RecentlyViewedHandler{recentUC: uc}
}

func (h *RecentlyViewedHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.recentUC.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, views)
}

func (h *RecentlyViewedHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.recentUC.Clear(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Recently viewed cleared")
}
