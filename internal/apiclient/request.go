package apiclient

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/goccy/go-json"
)

// Request describes one call to the storefront API. The body is kept as bytes so
// the same request can be sent to the local and the production endpoint.
type Request struct {
	Method string
	Header http.Header
	Body   []byte
	// Credentials sends the client's cookie jar along with the request.
	// Off by default: wildcard-origin APIs reject credentialed requests.
	Credentials bool
}

// Get is a bodiless GET request.
func Get() Request {
	return Request{Method: http.MethodGet}
}

// Delete is a bodiless DELETE request.
func Delete() Request {
	return Request{Method: http.MethodDelete}
}

// JSON encodes payload as the request body.
func JSON(method string, payload any) (Request, error) {
	r := Request{Method: method}
	if payload == nil {
		return r, nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Request{}, fmt.Errorf("failed to encode request body: %w", err)
	}
	r.Body = body
	return r, nil
}

// FormField is a plain multipart field. Fields are written in slice order.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a file part of a multipart body.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Multipart builds a multipart/form-data request. The Content-Type header
// overrides the JSON default.
func Multipart(method string, fields []FormField, files []FormFile) (Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return Request{}, fmt.Errorf("failed to write form field %s: %w", f.Name, err)
		}
	}

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(f.Field), quoteEscaper.Replace(f.Filename)))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return Request{}, fmt.Errorf("failed to create form file %s: %w", f.Filename, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return Request{}, fmt.Errorf("failed to write form file %s: %w", f.Filename, err)
		}
	}

	if err := w.Close(); err != nil {
		return Request{}, fmt.Errorf("failed to close multipart body: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", w.FormDataContentType())
	return Request{Method: method, Header: header, Body: buf.Bytes()}, nil
}
