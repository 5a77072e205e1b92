package domain

import "time"

// Client storage keys
const (
	TokenKey          = "hometex-auth-token"
	CartKey           = "hometex-cart"
	WishlistKey       = "hometex-wishlist"
	OfferKey          = "hometex-offers"
	RecentlyViewedKey = "recentlyViewed"
	LocationKey       = "user_location"
)

const (
	// StateTTL is the expiry of every persisted client collection.
	StateTTL = 30 * 24 * time.Hour
	// TokenTTL matches the access token lifetime issued by the API.
	TokenTTL = 7 * 24 * time.Hour

	RecentlyViewedLimit = 10
)

// Offer statuses
const (
	OfferStatusNone      = ""
	OfferStatusSubmitted = "submitted"
)

// Order Statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusReturned   = "returned"
)

// Payment Methods
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodBKash  = "bkash"
	PaymentMethodNagad  = "nagad"
	PaymentMethodSSLCom = "sslcommerz"
)

var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusReturned,
}
