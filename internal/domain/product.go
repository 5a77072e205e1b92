package domain

import "time"

// Product is the canonical product view model. Every product payload coming from
// the API, whatever its field layout, is normalized into this shape.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug,omitempty"`
	Description   string   `json:"description,omitempty"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Category      string   `json:"category,omitempty"`
	Subcategory   string   `json:"subcategory,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Discount      float64  `json:"discount,omitempty"` // percent
	Rating        float64  `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	Stock         int      `json:"stock"`
	InStock       bool     `json:"inStock"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// ProductRef is the slice of a product that client-side collections persist.
// Slug and stock are left out; the entries live in size-limited cookies.
type ProductRef struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image,omitempty"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
}

// Ref reduces a product to what cart and wishlist entries keep.
func (p Product) Ref() ProductRef {
	return ProductRef{
		ID:            p.ID,
		Name:          p.Name,
		Image:         p.Image,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
	}
}

type Category struct {
	ID            ID         `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Image         string     `json:"image,omitempty"`
	ProductCount  int        `json:"productCount,omitempty"`
	Subcategories []Category `json:"subcategories,omitempty"`
}

// ProductFilter holds list query parameters. Fields are sent in declaration order
// and only when set.
type ProductFilter struct {
	Page        int
	PerPage     int
	Category    string
	Subcategory string
	Search      string
	Brand       string
	Color       string
	Size        string
	MinPrice    float64
	MaxPrice    float64
	Sort        string // newest, price_asc, price_desc, popular
	InStock     *bool
}

// ProductBatch is the aggregate returned by a multi-ID lookup. Failures are not
// raised; the IDs that could not be fetched are reported in FailedIDs.
type ProductBatch struct {
	Paginated[Product]
	FailedIDs []string `json:"failed_ids,omitempty"`
}

// RecentView is an entry in the recently-viewed list, most recent first.
type RecentView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	ViewedAt      int64    `json:"viewedAt"` // unix millis
}

func (r RecentView) ViewedTime() time.Time {
	return time.UnixMilli(r.ViewedAt)
}

type Review struct {
	ID        ID        `json:"id"`
	ProductID ID        `json:"product_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewImage is an image attached to a review before upload.
type ReviewImage struct {
	Filename string
	Data     []byte
}

type ReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
	Images    []ReviewImage
}

// --- Alerts & Offers ---

type Offer struct {
	ProductID ID      `json:"product_id"`
	Price     Amount  `json:"price"`
	Quantity  int     `json:"quantity"`
	Message   string  `json:"message"`
	Reference string  `json:"reference,omitempty"`
}

type RestockAlert struct {
	ID        ID        `json:"id"`
	ProductID ID        `json:"product_id"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Gifts ---

type GiftCard struct {
	ID          ID         `json:"id"`
	Code        string     `json:"code,omitempty"`
	Title       string     `json:"title"`
	Amount      Amount     `json:"amount"`
	Balance     Amount     `json:"balance,omitempty"`
	Image       string     `json:"image,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsRedeemed  bool       `json:"is_redeemed,omitempty"`
	Description string     `json:"description,omitempty"`
}

type GiftPurchase struct {
	GiftCardID     string `json:"gift_card_id"`
	RecipientName  string `json:"recipient_name"`
	RecipientEmail string `json:"recipient_email"`
	Message        string `json:"message,omitempty"`
}
