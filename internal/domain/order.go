package domain

import (
	"time"
)

// --- Cart Entities ---

// CartItem is a client-side cart line. Identity is (Product.ID, SelectedColor, SelectedSize).
type CartItem struct {
	Product       ProductRef `json:"product"`
	Quantity      int        `json:"quantity"`
	SelectedColor string     `json:"selectedColor,omitempty"`
	SelectedSize  string     `json:"selectedSize,omitempty"`
}

// Key returns the identity of the line.
func (i CartItem) Key() CartLineKey {
	return CartLineKey{ProductID: i.Product.ID, Color: i.SelectedColor, Size: i.SelectedSize}
}

func (i CartItem) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

type CartLineKey struct {
	ProductID string `json:"productId"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type CartSummary struct {
	Lines    int     `json:"lines"`
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// RemoteCart is the server-side cart of an authenticated user.
type RemoteCart struct {
	Items    []RemoteCartItem `json:"items"`
	Subtotal Amount           `json:"subtotal"`
	Total    Amount           `json:"total"`
}

type RemoteCartItem struct {
	ID        ID     `json:"id"`
	ProductID ID     `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     Amount `json:"price"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// CartLineUpdate addresses a server-side cart line by its identity.
type CartLineUpdate struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

// --- Order Entities ---

type Order struct {
	ID              ID          `json:"id"`
	InvoiceNo       string      `json:"invoice_no"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	Subtotal        Amount      `json:"subtotal"`
	ShippingCharge  Amount      `json:"shipping_charge"`
	Discount        Amount      `json:"discount"`
	Total           Amount      `json:"total"`
	ShippingAddress Address     `json:"shipping_address"`
	Items           []OrderItem `json:"items"`
	ConsignmentID   ID          `json:"consignment_id,omitempty"`
	TrackingCode    string      `json:"tracking_code,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ProductID ID     `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     Amount `json:"price"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type CheckoutRequest struct {
	Items           []AddToCartRequest `json:"items"`
	ShippingAddress Address            `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method"`
	CouponCode      string             `json:"coupon_code,omitempty"`
	GiftCardCode    string             `json:"gift_card_code,omitempty"`
	Note            string             `json:"note,omitempty"`
}

// TrackingStatus is the courier's view of a consignment.
type TrackingStatus struct {
	ConsignmentID string `json:"consignmentId,omitempty"`
	Invoice       string `json:"invoice,omitempty"`
	TrackingCode  string `json:"trackingCode,omitempty"`
	Status        string `json:"status"`
}

// TrackingResult combines the storefront order with the courier's view of it.
// Courier is nil when the courier has no record yet.
type TrackingResult struct {
	Order   *Order          `json:"order,omitempty"`
	Courier *TrackingStatus `json:"courier,omitempty"`
}

// --- Payments ---

type PaymentMethod struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Logo    string `json:"logo,omitempty"`
	Enabled bool   `json:"enabled"`
}

type PaymentSession struct {
	TransactionID string `json:"tran_id"`
	GatewayURL    string `json:"gateway_url,omitempty"`
	Status        string `json:"status"`
}

type PaymentStatus struct {
	TransactionID string `json:"tran_id"`
	OrderID       ID     `json:"order_id"`
	Status        string `json:"status"`
	Amount        Amount `json:"amount"`
}
