package utils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"io"
	"net/http"

	"hometex-storefront/pkg/logger"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// MaxImageWidth is the widest image kept for review uploads.
const MaxImageWidth = 2000

// ProcessImage resizes an image to MaxImageWidth and converts it to WebP,
// falling back to JPEG when WebP encoding fails.
func ProcessImage(r io.Reader, filename string) ([]byte, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	logger.Debug().Str("file", filename).Str("format", format).Msg("Processing image")

	if img.Bounds().Dx() > MaxImageWidth {
		img = imaging.Resize(img, MaxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer

	// Quality 85, lossy
	err = webp.Encode(&buf, img, &webp.Options{
		Lossless: false,
		Quality:  85,
	})
	if err != nil {
		logger.Warn().Err(err).Str("file", filename).Msg("WebP encoding failed, falling back to JPEG")
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	}

	return buf.Bytes(), "image/webp", nil
}

// IsImage verifies simple content type
func IsImage(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png" || contentType == "image/webp" || contentType == "image/jpg" || contentType == "image/gif"
}

// DetectImageType sniffs the content type of data.
func DetectImageType(data []byte) string {
	return http.DetectContentType(data)
}
