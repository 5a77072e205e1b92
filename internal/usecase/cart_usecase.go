package usecase

import (
	"context"

	"hometex-storefront/internal/domain"
	"hometex-storefront/internal/session"
	"hometex-storefront/pkg/logger"
	"hometex-storefront/pkg/utils"
)

// CartRemote is the server-side cart kept for signed-in visitors.
type CartRemote interface {
	Get(ctx context.Context) (*domain.Response[domain.RemoteCart], error)
	Add(ctx context.Context, req domain.AddToCartRequest) (*domain.Response[domain.RemoteCart], error)
	UpdateQuantity(ctx context.Context, line domain.CartLineUpdate) (*domain.Response[domain.RemoteCart], error)
	Remove(ctx context.Context, line domain.CartLineUpdate) (*domain.Response[domain.RemoteCart], error)
	Clear(ctx context.Context) (*domain.Message, error)
}

// CartUsecase keeps the cart in client state. Signed-in visitors' changes go to the
// API first; a failed remote call leaves the local cart unchanged.
type CartUsecase struct {
	remote      CartRemote
	tokens      domain.TokenStore
	maxQuantity int
}

func NewCartUsecase(remote CartRemote, tokens domain.TokenStore, maxQuantity int) *CartUsecase {
	return &CartUsecase{
		remote:      remote,
		tokens:      tokens,
		maxQuantity: maxQuantity,
	}
}

func (u *CartUsecase) Items(ctx context.Context) ([]domain.CartItem, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	return u.load(ctx, store), nil
}

// Add puts quantity units of product in the cart. A line with the same product,
// color and size is merged rather than duplicated.
func (u *CartUsecase) Add(ctx context.Context, product domain.ProductRef, quantity int, color, size string) ([]domain.CartItem, error) {
	if product.ID == "" {
		return nil, domain.ErrInvalidProduct
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	items := u.load(ctx, store)
	key := domain.CartLineKey{ProductID: product.ID, Color: color, Size: size}

	idx := indexOf(items, key)
	total := quantity
	if idx >= 0 {
		total += items[idx].Quantity
	}
	if err := u.checkLimit(total); err != nil {
		return nil, err
	}

	if authenticated(ctx, u.tokens) {
		req := domain.AddToCartRequest{ProductID: product.ID, Quantity: quantity, Color: color, Size: size}
		if _, err := u.remote.Add(ctx, req); err != nil {
			return nil, err
		}
	}

	if idx >= 0 {
		items[idx].Quantity = total
		items[idx].Product = product
	} else {
		items = append(items, domain.CartItem{
			Product:       product,
			Quantity:      quantity,
			SelectedColor: color,
			SelectedSize:  size,
		})
	}
	return items, u.save(store, items)
}

// SetQuantity sets a line's quantity; zero removes the line.
func (u *CartUsecase) SetQuantity(ctx context.Context, key domain.CartLineKey, quantity int) ([]domain.CartItem, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if quantity == 0 {
		return u.Remove(ctx, key)
	}
	if err := u.checkLimit(quantity); err != nil {
		return nil, err
	}

	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	items := u.load(ctx, store)
	idx := indexOf(items, key)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}

	if authenticated(ctx, u.tokens) {
		line := domain.CartLineUpdate{ProductID: key.ProductID, Color: key.Color, Size: key.Size, Quantity: quantity}
		if _, err := u.remote.UpdateQuantity(ctx, line); err != nil {
			return nil, err
		}
	}

	items[idx].Quantity = quantity
	return items, u.save(store, items)
}

func (u *CartUsecase) Increment(ctx context.Context, key domain.CartLineKey) ([]domain.CartItem, error) {
	qty, err := u.quantityOf(ctx, key)
	if err != nil {
		return nil, err
	}
	return u.SetQuantity(ctx, key, qty+1)
}

// Decrement lowers a line by one and removes it when it reaches zero.
func (u *CartUsecase) Decrement(ctx context.Context, key domain.CartLineKey) ([]domain.CartItem, error) {
	qty, err := u.quantityOf(ctx, key)
	if err != nil {
		return nil, err
	}
	return u.SetQuantity(ctx, key, qty-1)
}

func (u *CartUsecase) Remove(ctx context.Context, key domain.CartLineKey) ([]domain.CartItem, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	items := u.load(ctx, store)
	idx := indexOf(items, key)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}

	if authenticated(ctx, u.tokens) {
		line := domain.CartLineUpdate{ProductID: key.ProductID, Color: key.Color, Size: key.Size}
		if _, err := u.remote.Remove(ctx, line); err != nil {
			return nil, err
		}
	}

	items = append(items[:idx], items[idx+1:]...)
	return items, u.save(store, items)
}

func (u *CartUsecase) Clear(ctx context.Context) error {
	store, err := session.Require(ctx)
	if err != nil {
		return err
	}
	if authenticated(ctx, u.tokens) {
		if _, err := u.remote.Clear(ctx); err != nil {
			return err
		}
	}
	return store.Delete(domain.CartKey)
}

func (u *CartUsecase) Summary(ctx context.Context) (domain.CartSummary, error) {
	items, err := u.Items(ctx)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return SummarizeCart(items), nil
}

// Refresh replaces the local cart with the server cart of a signed-in visitor.
// Anonymous visitors keep their local cart.
func (u *CartUsecase) Refresh(ctx context.Context) ([]domain.CartItem, error) {
	store, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}
	if !authenticated(ctx, u.tokens) {
		return u.load(ctx, store), nil
	}

	resp, err := u.remote.Get(ctx)
	if err != nil {
		return nil, err
	}
	remote := resp.Value()
	items := make([]domain.CartItem, 0, len(remote.Items))
	for _, ri := range remote.Items {
		if ri.ProductID == "" || ri.Quantity <= 0 {
			continue
		}
		items = append(items, domain.CartItem{
			Product: domain.ProductRef{
				ID:    ri.ProductID.String(),
				Name:  ri.Name,
				Image: ri.Image,
				Price: ri.Price.Float64(),
			},
			Quantity:      ri.Quantity,
			SelectedColor: ri.Color,
			SelectedSize:  ri.Size,
		})
	}
	logger.WithContext(ctx).Debug().Int("lines", len(items)).Msg("Cart refreshed from API")
	return items, u.save(store, items)
}

func (u *CartUsecase) quantityOf(ctx context.Context, key domain.CartLineKey) (int, error) {
	items, err := u.Items(ctx)
	if err != nil {
		return 0, err
	}
	idx := indexOf(items, key)
	if idx < 0 {
		return 0, domain.ErrItemNotFound
	}
	return items[idx].Quantity, nil
}

func (u *CartUsecase) checkLimit(quantity int) error {
	if u.maxQuantity > 0 && quantity > u.maxQuantity {
		return domain.ErrQuantityLimit
	}
	return nil
}

func (u *CartUsecase) load(ctx context.Context, store domain.StateStore) []domain.CartItem {
	var items []domain.CartItem
	if !session.Load(ctx, store, domain.CartKey, &items) {
		return []domain.CartItem{}
	}
	return items
}

func (u *CartUsecase) save(store domain.StateStore, items []domain.CartItem) error {
	if len(items) == 0 {
		return store.Delete(domain.CartKey)
	}
	return session.Save(store, domain.CartKey, items, domain.StateTTL)
}

func indexOf(items []domain.CartItem, key domain.CartLineKey) int {
	for i, item := range items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// SummarizeCart totals a cart; the subtotal is rounded to two decimals.
func SummarizeCart(items []domain.CartItem) domain.CartSummary {
	var s domain.CartSummary
	for _, item := range items {
		s.Lines++
		s.Count += item.Quantity
		s.Subtotal += item.LineTotal()
	}
	s.Subtotal = utils.RoundMoney(s.Subtotal)
	return s
}
