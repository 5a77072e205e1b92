package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/utils"
)

type ReviewService struct {
	client *apiclient.Client
}

func NewReviewService(client *apiclient.Client) *ReviewService {
	return &ReviewService{client: client}
}

func (s *ReviewService) ListForProduct(ctx context.Context, productID string, page int) (*domain.Response[domain.Paginated[domain.Review]], error) {
	endpoint := apiclient.NewQuery().AddInt("page", page).Apply(pathf("/reviews/product/%s", productID))
	return apiclient.Do[domain.Response[domain.Paginated[domain.Review]]](ctx, s.client, endpoint, apiclient.Get(), false)
}

func (s *ReviewService) Mine(ctx context.Context) (*domain.Response[[]domain.Review], error) {
	return apiclient.Do[domain.Response[[]domain.Review]](ctx, s.client, "/reviews/my", apiclient.Get(), true)
}

// Create posts a review. Reviews with images go out as multipart with every
// image re-encoded by utils.ProcessImage; plain reviews are sent as JSON.
func (s *ReviewService) Create(ctx context.Context, in domain.ReviewInput) (*domain.Response[domain.Review], error) {
	r, err := reviewRequest(http.MethodPost, in)
	if err != nil {
		return nil, err
	}
	return apiclient.Do[domain.Response[domain.Review]](ctx, s.client, "/reviews", r, true)
}

func (s *ReviewService) Update(ctx context.Context, id string, in domain.ReviewInput) (*domain.Response[domain.Review], error) {
	r, err := reviewRequest(http.MethodPut, in)
	if err != nil {
		return nil, err
	}
	return apiclient.Do[domain.Response[domain.Review]](ctx, s.client, pathf("/reviews/%s", id), r, true)
}

func (s *ReviewService) Delete(ctx context.Context, id string) (*domain.Message, error) {
	return apiclient.Do[domain.Message](ctx, s.client, pathf("/reviews/%s", id), apiclient.Delete(), true)
}

func reviewRequest(method string, in domain.ReviewInput) (apiclient.Request, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return apiclient.Request{}, fmt.Errorf("%w: got %d", domain.ErrInvalidRating, in.Rating)
	}

	if len(in.Images) == 0 {
		return apiclient.JSON(method, map[string]any{
			"product_id": in.ProductID,
			"rating":     in.Rating,
			"comment":    in.Comment,
		})
	}

	fields := []apiclient.FormField{
		{Name: "product_id", Value: in.ProductID},
		{Name: "rating", Value: strconv.Itoa(in.Rating)},
		{Name: "comment", Value: in.Comment},
	}
	// Multipart PUT bodies are not parsed by the API; spoof the method instead.
	if method != http.MethodPost {
		fields = append(fields, apiclient.FormField{Name: "_method", Value: method})
		method = http.MethodPost
	}

	files := make([]apiclient.FormFile, 0, len(in.Images))
	for _, img := range in.Images {
		data, contentType, err := utils.ProcessImage(bytes.NewReader(img.Data), img.Filename)
		if err != nil {
			return apiclient.Request{}, err
		}
		files = append(files, apiclient.FormFile{
			Field:       "images[]",
			Filename:    processedName(img.Filename, contentType),
			ContentType: contentType,
			Data:        data,
		})
	}
	return apiclient.Multipart(method, fields, files)
}

func processedName(filename, contentType string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	if base == "" || base == "." {
		base = "image"
	}
	if contentType == "image/jpeg" {
		return base + ".jpg"
	}
	return base + ".webp"
}
