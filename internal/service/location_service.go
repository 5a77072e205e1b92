package service

import (
	"context"

	"hometex-storefront/internal/apiclient"
	"hometex-storefront/internal/domain"
)

// LocationService exposes the Bangladesh address hierarchy and delivery charges.
type LocationService struct {
	client *apiclient.Client
}

func NewLocationService(client *apiclient.Client) *LocationService {
	return &LocationService{client: client}
}

func (s *LocationService) Divisions(ctx context.Context) (*domain.Response[[]domain.Division], error) {
	return apiclient.Do[domain.Response[[]domain.Division]](ctx, s.client, "/divisions", apiclient.Get(), false)
}

func (s *LocationService) Districts(ctx context.Context, divisionID string) (*domain.Response[[]domain.District], error) {
	endpoint := apiclient.NewQuery().Add("division_id", divisionID).Apply("/districts")
	return apiclient.Do[domain.Response[[]domain.District]](ctx, s.client, endpoint, apiclient.Get(), false)
}

func (s *LocationService) Upazilas(ctx context.Context, districtID string) (*domain.Response[[]domain.Upazila], error) {
	endpoint := apiclient.NewQuery().Add("district_id", districtID).Apply("/upazilas")
	return apiclient.Do[domain.Response[[]domain.Upazila]](ctx, s.client, endpoint, apiclient.Get(), false)
}

func (s *LocationService) ShippingCharge(ctx context.Context, district string, subtotal float64) (*domain.Response[domain.ShippingCharge], error) {
	endpoint := apiclient.NewQuery().Add("district", district).AddFloat("subtotal", subtotal).Apply("/shipping-charge")
	return apiclient.Do[domain.Response[domain.ShippingCharge]](ctx, s.client, endpoint, apiclient.Get(), false)
}
