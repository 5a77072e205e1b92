package apiclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com/api", "http://example.com/api"},
		{"//example.com", "http://example.com"},
		{"localhost:8000/api", "http://localhost:8000/api"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestNormalizeURLIdempotent(t *testing.T) {
	inputs := []string{"", "example.com", "//cdn.example.com", "https://x.y", "ftp://host", "/relative", "http:/broken"}
	for _, in := range inputs {
		once := NormalizeURL(in)
		assert.Equal(t, once, NormalizeURL(once), "input %q", in)
	}
}
