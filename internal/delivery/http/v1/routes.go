package v1

import (
	"net/http"
)

// Handlers groups every v1 handler for registration.
type Handlers struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Recent   *RecentlyViewedHandler
	Offer    *OfferHandler
	Location *LocationHandler
	Order    *OrderHandler
	Review   *ReviewHandler
	Account  *AccountHandler
	Payment  *PaymentHandler
	Gift     *GiftHandler
	Contact  *ContactHandler
	Alert    *AlertHandler
}

// Register mounts the v1 routes on mux. requireAuth guards routes whose
// upstream endpoints need a signed-in visitor.
func Register(mux *http.ServeMux, h Handlers, requireAuth func(http.Handler) http.Handler) {
	protected := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(fn)
	}

	// Auth
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", h.Auth.Logout)
	mux.HandleFunc("GET /api/v1/auth/session", h.Auth.Session)
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/verify-otp", h.Auth.VerifyOTP)
	mux.HandleFunc("POST /api/v1/auth/forgot-password", h.Account.ForgotPassword)
	mux.HandleFunc("POST /api/v1/auth/reset-password", h.Account.ResetPassword)

	// Account
	mux.Handle("GET /api/v1/account", protected(h.Account.Me))
	mux.Handle("GET /api/v1/account/dashboard", protected(h.Account.Dashboard))
	mux.Handle("GET /api/v1/account/profile", protected(h.Account.GetProfile))
	mux.Handle("PUT /api/v1/account/profile", protected(h.Account.UpdateProfile))
	mux.Handle("PUT /api/v1/account/password", protected(h.Account.ChangePassword))
	mux.Handle("GET /api/v1/account/addresses", protected(h.Account.ListAddresses))
	mux.Handle("POST /api/v1/account/addresses", protected(h.Account.AddAddress))
	mux.Handle("PUT /api/v1/account/addresses/{id}", protected(h.Account.UpdateAddress))
	mux.Handle("DELETE /api/v1/account/addresses/{id}", protected(h.Account.DeleteAddress))

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/categories", h.Catalog.GetCategories)
	mux.HandleFunc("GET /api/v1/products", h.Catalog.ListProducts)
	mux.HandleFunc("GET /api/v1/products/batch", h.Catalog.GetBatch)
	mux.HandleFunc("GET /api/v1/product/{slug}", h.Catalog.GetProductBySlug)
	mux.HandleFunc("GET /api/v1/products/{id}", h.Catalog.GetProduct)
	mux.HandleFunc("GET /api/v1/products/{id}/related", h.Catalog.GetRelated)
	mux.HandleFunc("GET /api/v1/search", h.Catalog.Search)

	// Reviews
	mux.HandleFunc("GET /api/v1/products/{id}/reviews", h.Review.ListReviews)
	mux.Handle("POST /api/v1/products/{id}/reviews", protected(h.Review.CreateReview))
	mux.Handle("GET /api/v1/reviews/mine", protected(h.Review.MyReviews))
	mux.Handle("PUT /api/v1/reviews/{id}", protected(h.Review.UpdateReview))
	mux.Handle("DELETE /api/v1/reviews/{id}", protected(h.Review.DeleteReview))

	// Recently viewed
	mux.HandleFunc("GET /api/v1/recently-viewed", h.Recent.List)
	mux.HandleFunc("DELETE /api/v1/recently-viewed", h.Recent.Clear)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", h.Cart.GetCart)
	mux.HandleFunc("DELETE /api/v1/cart", h.Cart.ClearCart)
	mux.HandleFunc("POST /api/v1/cart/items", h.Cart.AddItem)
	mux.HandleFunc("PUT /api/v1/cart/items", h.Cart.UpdateItem)
	mux.HandleFunc("DELETE /api/v1/cart/items", h.Cart.RemoveItem)
	mux.HandleFunc("POST /api/v1/cart/items/increment", h.Cart.IncrementItem)
	mux.HandleFunc("POST /api/v1/cart/items/decrement", h.Cart.DecrementItem)
	mux.Handle("POST /api/v1/cart/refresh", protected(h.Cart.RefreshCart))

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", h.Wishlist.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist", h.Wishlist.Toggle)
	mux.HandleFunc("GET /api/v1/wishlist/{productId}", h.Wishlist.Check)
	mux.HandleFunc("DELETE /api/v1/wishlist/{productId}", h.Wishlist.Remove)
	mux.Handle("POST /api/v1/wishlist/refresh", protected(h.Wishlist.Refresh))

	// Offers
	mux.Handle("POST /api/v1/offers", protected(h.Offer.Submit))
	mux.HandleFunc("GET /api/v1/offers/{productId}", h.Offer.Status)

	// Restock alerts
	mux.Handle("GET /api/v1/restock-alerts", protected(h.Alert.List))
	mux.Handle("POST /api/v1/restock-alerts", protected(h.Alert.Subscribe))
	mux.Handle("DELETE /api/v1/restock-alerts/{id}", protected(h.Alert.Cancel))

	// Location
	mux.HandleFunc("GET /api/v1/location", h.Location.GetLocation)
	mux.HandleFunc("PUT /api/v1/location", h.Location.SaveLocation)
	mux.HandleFunc("POST /api/v1/location/detect", h.Location.Detect)
	mux.HandleFunc("GET /api/v1/locations/divisions", h.Location.Divisions)
	mux.HandleFunc("GET /api/v1/locations/districts", h.Location.Districts)
	mux.HandleFunc("GET /api/v1/locations/upazilas", h.Location.Upazilas)
	mux.HandleFunc("GET /api/v1/shipping-charge", h.Location.ShippingCharge)

	// Orders
	mux.Handle("GET /api/v1/orders", protected(h.Order.ListOrders))
	mux.Handle("POST /api/v1/orders", protected(h.Order.PlaceOrder))
	mux.Handle("GET /api/v1/orders/{id}", protected(h.Order.GetOrder))
	mux.Handle("POST /api/v1/orders/{id}/cancel", protected(h.Order.CancelOrder))

	// Payments
	mux.HandleFunc("GET /api/v1/payment-methods", h.Payment.Methods)
	mux.Handle("POST /api/v1/payments", protected(h.Payment.Initiate))
	mux.Handle("GET /api/v1/payments/{transactionId}", protected(h.Payment.Status))

	// Gift cards
	mux.HandleFunc("GET /api/v1/gift-cards", h.Gift.ListCards)
	mux.Handle("POST /api/v1/gift-cards/purchase", protected(h.Gift.Purchase))
	mux.Handle("POST /api/v1/gift-cards/redeem", protected(h.Gift.Redeem))
	mux.Handle("GET /api/v1/gift-cards/balance", protected(h.Gift.Balance))

	// Contact (Public)
	mux.HandleFunc("POST /api/v1/contact", h.Contact.Send)
	mux.HandleFunc("POST /api/v1/newsletter", h.Contact.Subscribe)

	// Tracking (Public)
	mux.HandleFunc("GET /api/v1/orders/track/{invoice}", h.Order.TrackOrder)
	mux.HandleFunc("GET /api/v1/tracking/{code}", h.Order.TrackParcel)
}
