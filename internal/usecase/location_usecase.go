package usecase

import (
	"context"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/session"
)

type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error)
}

// LocationUsecase stores the visitor's delivery location.
type LocationUsecase struct {
	geocoder Geocoder
}

func NewLocationUsecase(geocoder Geocoder) *LocationUsecase {
	return &LocationUsecase{geocoder: geocoder}
}

// Current returns the saved location, or nil when none is saved.
func (u *LocationUsecase) Current(ctx context.Context) (*domain.LocationInfo, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	var info domain.LocationInfo
	if !session.Load(ctx, store, domain.LocationKey, &info) {
		return nil, nil
	}
	return &info, nil
}

// Detect reverse-geocodes the coordinates and saves the result.
func (u *LocationUsecase) Detect(ctx context.Context, lat, lon float64) (*domain.LocationInfo, error) {
	if _, err := session.Require(ctx); err != nil {
		return nil, err
	}
	info, err := u.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return info, u.Save(ctx, *info)
}

// Save stores info as given; user edits are not re-validated.
func (u *LocationUsecase) Save(ctx context.Context, info domain.LocationInfo) error {
	store, err := session.Require(ctx)
	if err != nil {
		return err
	}
	return session.Save(store, domain.LocationKey, info, domain.StateTTL)
}
