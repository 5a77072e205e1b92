package service

import (
	"math"
	"strconv"
	"strings"

	"hometex-storefront/internal/domain"
	"hometex-storefront/pkg/utils"
)

// RawProduct is a product payload as the API sends it. List, detail and card
// endpoints use different field names for the same data.
type RawProduct map[string]any

// NormalizeProduct maps any known product layout onto domain.Product. Detail
// payloads that wrap the product in a "product" object are flattened first, with
// the inner object taking precedence.
func NormalizeProduct(raw RawProduct) domain.Product {
	fields := flatten(raw)

	p := domain.Product{
		ID:          firstString(fields, "id", "product_id"),
		Name:        firstString(fields, "name", "product_name", "title"),
		Slug:        firstString(fields, "slug", "product_slug"),
		Description: firstString(fields, "description", "short_description", "details"),
		Category:    firstString(fields, "category", "category_name"),
		Subcategory: firstString(fields, "subcategory", "sub_category", "subcategory_name", "sub_category_name"),
		Brand:       firstString(fields, "brand", "brand_name"),
		Rating:      firstNumber(fields, "rating", "average_rating", "avg_rating"),
		ReviewCount: int(firstNumber(fields, "review_count", "reviews_count", "total_reviews")),
		Stock:       int(firstNumber(fields, "stock", "stock_quantity", "quantity", "qty")),
		Colors:      stringList(fields, "colors", "color_options"),
		Sizes:       stringList(fields, "sizes", "size_options"),
		Tags:        stringList(fields, "tags"),
	}

	p.Images = stringList(fields, "images", "gallery", "product_images")
	p.Image = firstString(fields, "image", "thumbnail", "image_url", "main_image", "feature_image")
	if p.Image == "" && len(p.Images) > 0 {
		p.Image = p.Images[0]
	}

	if p.Slug == "" && p.Name != "" {
		p.Slug = utils.GenerateSlug(p.Name)
	}

	p.Price = firstPositive(fields, "sale_price", "discount_price", "offer_price", "price", "selling_price", "regular_price", "base_price")
	original := firstPositive(fields, "original_price", "regular_price", "base_price", "mrp", "old_price", "price")
	if original > p.Price && p.Price > 0 {
		o := original
		p.OriginalPrice = &o
	}

	p.Discount = firstNumber(fields, "discount_percent", "discount_percentage")
	if p.Discount == 0 && p.OriginalPrice != nil {
		p.Discount = math.Round((1 - p.Price/(*p.OriginalPrice)) * 100)
	}

	p.InStock = inStock(fields, p.Stock)
	return p
}

// NormalizeProducts normalizes a list, dropping entries without an id.
func NormalizeProducts(raws []RawProduct) []domain.Product {
	out := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		p := NormalizeProduct(raw)
		if p.ID == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func flatten(raw RawProduct) map[string]any {
	inner, ok := raw["product"].(map[string]any)
	if !ok {
		return raw
	}
	merged := make(map[string]any, len(raw)+len(inner))
	for k, v := range raw {
		if k != "product" {
			merged[k] = v
		}
	}
	for k, v := range inner {
		merged[k] = v
	}
	return merged
}

func firstString(fields map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := asString(fields[k]); s != "" {
			return s
		}
	}
	return ""
}

// asString accepts strings, numbers and objects carrying a name/url.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		for _, k := range []string{"name", "title", "url", "image", "path", "src"} {
			if s, ok := val[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func asNumber(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		return utils.ParsePrice(val)
	case bool:
		if val {
			return 1
		}
	}
	return 0
}

func firstNumber(fields map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if n := asNumber(fields[k]); n != 0 {
			return n
		}
	}
	return 0
}

func firstPositive(fields map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if n := asNumber(fields[k]); n > 0 {
			return n
		}
	}
	return 0
}

func stringList(fields map[string]any, keys ...string) []string {
	for _, k := range keys {
		switch val := fields[k].(type) {
		case []any:
			out := make([]string, 0, len(val))
			for _, item := range val {
				if s := asString(item); s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			// comma separated
			var out []string
			for _, part := range strings.Split(val, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func inStock(fields map[string]any, stock int) bool {
	if b, ok := fields["in_stock"].(bool); ok {
		return b
	}
	if status := firstString(fields, "stock_status", "availability"); status != "" {
		status = strings.ToLower(status)
		return status == "in_stock" || status == "instock" || status == "in stock" || status == "available"
	}
	return stock > 0
}
