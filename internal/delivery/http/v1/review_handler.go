package v1

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/service"
	"hometex-storefront/pkg/logger"
	"hometex-storefront/pkg/utils"
)

const maxReviewImages = 5

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type ReviewHandler struct {
	reviews       *service.ReviewService
	maxUploadSize int64
}

func NewReviewHandler(reviews *service.ReviewService, maxUploadSizeMB int64) *ReviewHandler {
	return &ReviewHandler{
		reviews:       reviews,
		maxUploadSize: maxUploadSizeMB << 20,
	}
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	resp, err := h.reviews.ListForProduct(r.Context(), r.PathValue("id"), page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, resp.Value())
}

func (h *ReviewHandler) MyReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reviews.Mine(r.Context())
	relay(w, r, http.StatusOK, resp, err)
}

// CreateReview accepts multipart form data with rating, comment and up to
// maxReviewImages files under "images".
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseReviewForm(w, r)
	if !ok {
		return
	}
	input.ProductID = r.PathValue("id")

	resp, err := h.reviews.Create(r.Context(), input)
	relay(w, r, http.StatusCreated, resp, err)
}

// UpdateReview takes the same form as CreateReview. productId is optional.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseReviewForm(w, r)
	if !ok {
		return
	}
	input.ProductID = r.FormValue("productId")

	resp, err := h.reviews.Update(r.Context(), r.PathValue("id"), input)
	relay(w, r, http.StatusOK, resp, err)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	msg, err := h.reviews.Delete(r.Context(), r.PathValue("id"))
	relayMessage(w, r, msg, err)
}

func (h *ReviewHandler) parseReviewForm(w http.ResponseWriter, r *http.Request) (domain.ReviewInput, bool) {
	var input domain.ReviewInput

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Msg("Review upload rejected")
		utils.WriteError(w, http.StatusBadRequest, "File too large or invalid format")
		return input, false
	}

	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil || rating < 1 || rating > 5 {
		utils.WriteError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return input, false
	}
	input.Rating = rating
	input.Comment = strings.TrimSpace(r.FormValue("comment"))

	headers := r.MultipartForm.File["images"]
	if len(headers) > maxReviewImages {
		utils.WriteError(w, http.StatusBadRequest, "Too many images, maximum is "+strconv.Itoa(maxReviewImages))
		return input, false
	}
	for _, header := range headers {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			utils.WriteError(w, http.StatusBadRequest, "Invalid file extension")
			return input, false
		}
		file, err := header.Open()
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid file")
			return input, false
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid file")
			return input, false
		}
		if !utils.IsImage(utils.DetectImageType(data)) {
			utils.WriteError(w, http.StatusBadRequest, "Invalid file type. Allowed: JPEG, PNG, WebP, GIF")
			return input, false
		}
		input.Images = append(input.Images, domain.ReviewImage{Filename: header.Filename, Data: data})
	}
	return input, true
}
