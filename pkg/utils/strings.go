package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	slugInvalid  = regexp.MustCompile("[^a-z0-9 -]+")
	slugHyphens  = regexp.MustCompile("-+")
	priceNumber  = regexp.MustCompile(`-?[0-9]+(\.[0-9]+)?`)
)

// GenerateSlug converts a string into a URL-friendly slug.
// e.g. "Men's T-Shirt!" -> "mens-t-shirt"
func GenerateSlug(input string) string {
	s := strings.ToLower(input)
	s = slugInvalid.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, " ", "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}

// ParsePrice reads a price the API may send as a formatted string
// ("৳1,250.00", "Tk. 1250"). Thousands separators and currency text are ignored
// and the first number is used. Unparseable input yields 0.
func ParsePrice(s string) float64 {
	cleaned := priceNumber.FindString(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// RoundMoney rounds to two decimals without float drift.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
