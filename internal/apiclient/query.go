package apiclient

import (
	"net/url"
	"strconv"
	"strings"
)

// Query builds a query string that keeps parameters in the order they were added.
// Empty values are skipped.
type Query struct {
	parts []string
}

func NewQuery() *Query {
	return &Query{}
}

func (q *Query) Add(key, value string) *Query {
	if value == "" {
		return q
	}
	q.parts = append(q.parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
	return q
}

// AddInt adds v when it is positive.
func (q *Query) AddInt(key string, v int) *Query {
	if v <= 0 {
		return q
	}
	return q.Add(key, strconv.Itoa(v))
}

// AddFloat adds v when it is positive.
func (q *Query) AddFloat(key string, v float64) *Query {
	if v <= 0 {
		return q
	}
	return q.Add(key, strconv.FormatFloat(v, 'f', -1, 64))
}

func (q *Query) AddBool(key string, v *bool) *Query {
	if v == nil {
		return q
	}
	return q.Add(key, strconv.FormatBool(*v))
}

func (q *Query) Encode() string {
	return strings.Join(q.parts, "&")
}

// Apply appends the query string to path, if there is one.
func (q *Query) Apply(path string) string {
	if len(q.parts) == 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + q.Encode()
}
