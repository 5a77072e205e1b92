package apiclient

import "strings"

// NormalizeURL makes sure a base URL carries an explicit scheme.
// "example.com" becomes "http://example.com", "//example.com" becomes
// "http://example.com", and URLs that already start with http:// or https://
// are returned unchanged. Empty input is returned as is.
func NormalizeURL(raw string) string {
	if raw == "" {
		return raw
	}
	if hasHTTPScheme(raw) {
		return raw
	}
	if strings.HasPrefix(raw, "//") {
		return "http:" + raw
	}
	return "http://" + raw
}

func hasHTTPScheme(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
