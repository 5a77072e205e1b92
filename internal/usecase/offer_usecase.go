package usecase

import (
	"context"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/session"
	"hometex-storefront/pkg/logger"

	"github.com/google/uuid"
)

type OfferRemote interface {
	SubmitOffer(ctx context.Context, offer domain.Offer) (*domain.Response[domain.Offer], error)
}

// OfferUsecase submits price offers and remembers, per product, that one was sent.
type OfferUsecase struct {
	remote OfferRemote
}

func NewOfferUsecase(remote OfferRemote) *OfferUsecase {
	return &OfferUsecase{remote: remote}
}

func (u *OfferUsecase) Submit(ctx context.Context, offer domain.Offer) (*domain.Offer, error) {
	if offer.ProductID == "" {
		return nil, domain.ErrInvalidProduct
	}
	if offer.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if offer.Price <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	if offer.Reference == "" {
		offer.Reference = uuid.NewString()
	}

	if _, err := u.remote.SubmitOffer(ctx, offer); err != nil {
		return nil, err
	}

	statuses := u.load(ctx, store)
	statuses[offer.ProductID.String()] = domain.OfferStatusSubmitted
	if err := session.Save(store, domain.OfferKey, statuses, domain.StateTTL); err != nil {
		return nil, err
	}
	logger.WithContext(ctx).Info().Str("product_id", offer.ProductID.String()).Str("reference", offer.Reference).Msg("Offer submitted")
	return &offer, nil
}

// Status returns OfferStatusSubmitted or OfferStatusNone.
func (u *OfferUsecase) Status(ctx context.Context, productID string) (string, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return domain.OfferStatusNone, err
	}
	return u.load(ctx, store)[productID], nil
}

func (u *OfferUsecase) load(ctx context.Context, store domain.StateStore) map[string]string {
	statuses := map[string]string{}
	if !session.Load(ctx, store, domain.OfferKey, &statuses) || statuses == nil {
		return map[string]string{}
	}
	return statuses
}
