package domain

import (
	"time"
)

type User struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Address struct {
	ID         ID     `json:"id,omitempty"`
	Label      string `json:"label,omitempty"` // "Home", "Office"
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Division   string `json:"division"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code,omitempty"`
	IsDefault  bool   `json:"is_default"`
}

// --- Auth ---

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone,omitempty"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type PasswordReset struct {
	Email                string `json:"email"`
	Token                string `json:"token"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type PasswordChange struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Dashboard summarizes the account page.
type Dashboard struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	WishlistCount   int     `json:"wishlist_count"`
	TotalSpent      Amount  `json:"total_spent"`
	RecentOrders    []Order `json:"recent_orders,omitempty"`
}

// Session describes the current visitor as seen by the gateway.
type Session struct {
	Authenticated bool       `json:"authenticated"`
	UserID        string     `json:"userId,omitempty"`
	Email         string     `json:"email,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// --- Location ---

// LocationInfo is persisted verbatim under LocationKey.
type LocationInfo struct {
	DisplayName string  `json:"displayName"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	District    string  `json:"district"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Postcode    string  `json:"postcode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type Division struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	BnName string `json:"bn_name,omitempty"`
}

type District struct {
	ID         ID     `json:"id"`
	DivisionID ID     `json:"division_id"`
	Name       string `json:"name"`
	BnName     string `json:"bn_name,omitempty"`
}

type Upazila struct {
	ID         ID     `json:"id"`
	DistrictID ID     `json:"district_id"`
	Name       string `json:"name"`
	BnName     string `json:"bn_name,omitempty"`
}

type ShippingCharge struct {
	District string  `json:"district"`
	Charge   Amount  `json:"charge"`
	FreeFrom Amount  `json:"free_from,omitempty"`
}

// --- Contact ---

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
