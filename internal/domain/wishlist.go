package domain

import (
	"time"
)

// WishlistItem is unique per product id.
type WishlistItem struct {
	Product ProductRef `json:"product"`
	AddedAt int64      `json:"addedAt,omitempty"` // unix millis
}

// RemoteWishlistItem is an entry of the authenticated user's server-side wishlist.
type RemoteWishlistItem struct {
	ID        ID        `json:"id"`
	ProductID ID        `json:"product_id"`
	Name      string    `json:"name,omitempty"`
	Image     string    `json:"image,omitempty"`
	Price     Amount    `json:"price,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type WishlistCheck struct {
	InWishlist bool `json:"in_wishlist"`
}
