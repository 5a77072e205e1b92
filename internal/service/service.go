// Package service maps storefront API endpoints one to one onto Go methods.
// Errors from the API client are returned unchanged; services never swallow them.
package service

import (
	"fmt"
	"net/url"
)

// pathf formats an endpoint path, escaping every argument as a path segment.
func pathf(format string, args ...string) string {
	escaped := make([]any, len(args))
	for i, a := range args {
		escaped[i] = url.PathEscape(a)
	}
	return fmt.Sprintf(format, escaped...)
}
