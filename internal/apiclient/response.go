package apiclient

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hometex-storefront/pkg/logger"

	"github.com/goccy/go-json"
)

// HandleResponse decodes a 2xx body into T, or returns an *APIError for any other
// status. A body that is not valid JSON is treated as an empty object so the
// status code still decides the outcome. Valid JSON that does not fit T is an
// ErrUnexpectedBody error. The body is always closed.
func HandleResponse[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		raw = nil
	}

	if isOK(resp) {
		var out T
		if len(bytes.TrimSpace(raw)) == 0 || !json.Valid(raw) {
			return &out, nil
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			logger.Warn().Err(err).Str("url", requestURL(resp)).Int("status", resp.StatusCode).Msg("Response body does not match the expected shape")
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedBody, err)
		}
		return &out, nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		payload = map[string]any{}
	}

	return nil, &APIError{
		Message:    errorMessage(payload, raw, resp),
		StatusCode: resp.StatusCode,
		Response:   payload,
	}
}

// Do sends r to endpoint through the fallback fetch and shapes the result.
// auth selects the authenticated variant.
func Do[T any](ctx context.Context, c *Client, endpoint string, r Request, auth bool) (*T, error) {
	var (
		resp *http.Response
		err  error
	)
	if auth {
		resp, err = c.FetchWithFallback(ctx, endpoint, r)
	} else {
		resp, err = c.FetchPublicWithFallback(ctx, endpoint, r)
	}
	if err != nil {
		return nil, err
	}
	return HandleResponse[T](resp)
}

// Send JSON-encodes payload and calls Do.
func Send[T any](ctx context.Context, c *Client, method, endpoint string, payload any, auth bool) (*T, error) {
	r, err := JSON(method, payload)
	if err != nil {
		return nil, err
	}
	return Do[T](ctx, c, endpoint, r, auth)
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.String()
}

// errorMessage picks, in order: message, error, the flattened errors map, and the
// HTTP status text.
func errorMessage(payload any, raw []byte, resp *http.Response) string {
	if obj, ok := payload.(map[string]any); ok {
		if msg := stringField(obj["message"]); msg != "" {
			return msg
		}
		if msg := stringField(obj["error"]); msg != "" {
			return msg
		}
		if _, ok := obj["errors"].(map[string]any); ok {
			if msg := flattenErrors(raw); msg != "" {
				return msg
			}
		}
	}

	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("request failed with status %d", resp.StatusCode)
}

// stringField returns strings verbatim and JSON-encodes any other non-empty value.
func stringField(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
	case float64:
		if val == 0 {
			return ""
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// flattenErrors joins every message of a field -> messages map, keeping the field
// order of the body.
func flattenErrors(raw []byte) string {
	var body struct {
		Errors stdjson.RawMessage `json:"errors"`
	}
	if err := stdjson.Unmarshal(raw, &body); err != nil || len(body.Errors) == 0 {
		return ""
	}

	dec := stdjson.NewDecoder(bytes.NewReader(body.Errors))
	if tok, err := dec.Token(); err != nil || tok != stdjson.Delim('{') {
		return ""
	}

	var messages []string
	for dec.More() {
		if _, err := dec.Token(); err != nil { // field name
			break
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			break
		}
		messages = append(messages, collectMessages(value)...)
	}
	return strings.Join(messages, ", ")
}

func collectMessages(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return []string{val}
	case []any:
		var out []string
		for _, item := range val {
			out = append(out, collectMessages(item)...)
		}
		return out
	default:
		return []string{fmt.Sprint(val)}
	}
}
