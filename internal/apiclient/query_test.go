package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryKeepsDeclarationOrder(t *testing.T) {
	inStock := true
	q := NewQuery().
		AddInt("page", 2).
		Add("search", "bed sheet").
		Add("category", "").
		AddFloat("min_price", 0).
		AddFloat("max_price", 1500.5).
		AddBool("in_stock", &inStock).
		AddBool("featured", nil).
		Add("sort", "price_asc")

	assert.Equal(t, "page=2&search=bed+sheet&max_price=1500.5&in_stock=true&sort=price_asc", q.Encode())
	assert.Equal(t, "/products-web?page=2&search=bed+sheet&max_price=1500.5&in_stock=true&sort=price_asc", q.Apply("/products-web"))
}

func TestQueryApplyEmpty(t *testing.T) {
	assert.Equal(t, "/orders", NewQuery().Add("status", "").Apply("/orders"))
	assert.Equal(t, "/a?x=1&y=2", NewQuery().Add("y", "2").Apply("/a?x=1"))
}
