package usecase

import (
	"context"
	"errors"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/logger"
)

type Courier interface {
	StatusByConsignment(ctx context.Context, consignmentID string) (*domain.TrackingStatus, error)
	StatusByInvoice(ctx context.Context, invoice string) (*domain.TrackingStatus, error)
	StatusByTrackingCode(ctx context.Context, code string) (*domain.TrackingStatus, error)
}

type OrderTracker interface {
	TrackByInvoice(ctx context.Context, invoice string) (*domain.Response[domain.Order], error)
}

type TrackingUsecase struct {
	orders  OrderTracker
	courier Courier
}

func NewTrackingUsecase(orders OrderTracker, courier Courier) *TrackingUsecase {
	return &TrackingUsecase{orders: orders, courier: courier}
}

// TrackInvoice looks the order up and asks the courier for its status, by
// consignment id when the order has one. A courier without a record yields a
// result with a nil Courier.
func (u *TrackingUsecase) TrackInvoice(ctx context.Context, invoice string) (*domain.TrackingResult, error) {
	resp, err := u.orders.TrackByInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}
	order, err := resp.Result()
	if err != nil {
		return nil, err
	}

	result := &domain.TrackingResult{Order: order}

	var status *domain.TrackingStatus
	if order.ConsignmentID != "" {
		status, err = u.courier.StatusByConsignment(ctx, order.ConsignmentID.String())
	} else {
		status, err = u.courier.StatusByInvoice(ctx, invoice)
	}
	switch {
	case err == nil:
		result.Courier = status
	case errors.Is(err, domain.ErrTrackingUnavailable):
	default:
		logger.WithContext(ctx).Warn().Err(err).Str("invoice", invoice).Msg("Courier status lookup failed")
	}
	return result, nil
}

func (u *TrackingUsecase) TrackCode(ctx context.Context, code string) (*domain.TrackingStatus, error) {
	return u.courier.StatusByTrackingCode(ctx, code)
}
