package v1

import (
	"net/http"
	"strconv"
	"strings"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/usecase"
	"hometex-storefront/pkg/utils"
)

// maxBatchIDs bounds the fan-out of a single batch lookup.
const maxBatchIDs = 50

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalogUC.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, cats)
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	perPage, _ := strconv.Atoi(query.Get("per_page"))
	minPrice, _ := strconv.ParseFloat(query.Get("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(query.Get("max_price"), 64)

	var inStock *bool
	if val := query.Get("in_stock"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			inStock = &b
		}
	}

	filter := domain.ProductFilter{
		Page:        page,
		PerPage:     perPage,
		Category:    query.Get("category"),
		Subcategory: query.Get("subcategory"),
		Search:      query.Get("search"),
		Brand:       query.Get("brand"),
		Color:       query.Get("color"),
		Size:        query.Get("size"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Sort:        query.Get("sort"),
		InStock:     inStock,
	}

	products, err := h.catalogUC.ListProducts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, products)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		utils.WriteError(w, http.StatusBadRequest, "Query parameter q is required")
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	products, err := h.catalogUC.Search(r.Context(), q, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, products)
}

// GetProduct also records the product in the visitor's recently viewed list.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogUC.ViewProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetProductBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogUC.ProductBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogUC.Related(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	utils.WriteData(w, http.StatusOK, products)
}

// GetBatch takes ids=1,2,3. Products that fail to load are left out and listed
// under failed_ids; the request itself still succeeds.
func (h *CatalogHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Query parameter ids is required")
		return
	}
	if len(ids) > maxBatchIDs {
		utils.WriteError(w, http.StatusBadRequest, "Too many ids, maximum is "+strconv.Itoa(maxBatchIDs))
		return
	}

	utils.WriteData(w, http.StatusOK, h.catalogUC.Batch(r.Context(), ids))
}
