package apiclient

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartEscapesQuotedNames(t *testing.T) {
	r, err := Multipart(http.MethodPost,
		[]FormField{{Name: "rating", Value: "5"}},
		[]FormFile{{Field: `images[0]`, Filename: `towel "blue" \ front.jpg`, ContentType: "image/jpeg", Data: []byte("jpeg")}},
	)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(r.Body), params["boundary"])

	part, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "rating", part.FormName())

	part, err = reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, `images[0]`, part.FormName())
	assert.Equal(t, `towel "blue" \ front.jpg`, part.FileName())
	assert.Equal(t, "image/jpeg", part.Header.Get("Content-Type"))
	data, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))

	_, err = reader.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}
