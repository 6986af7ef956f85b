package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxDimension is the longest edge kept when compressing uploads.
	MaxDimension = 800
	// JPEGQuality matches the original client-side compression.
	JPEGQuality = 70
)

// Compress downscales an image so its longest edge is at most maxDimension
// and re-encodes it as JPEG. Images already within bounds are still
// re-encoded.
func Compress(data []byte, maxDimension, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	newWidth, newHeight := width, height
	if width > height {
		if width > maxDimension {
			newWidth = maxDimension
			newHeight = int(float64(height) * float64(maxDimension) / float64(width))
		}
	} else {
		if height > maxDimension {
			newHeight = maxDimension
			newWidth = int(float64(width) * float64(maxDimension) / float64(height))
		}
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

// DataURL wraps compressed JPEG bytes as an inline data URL, which is how
// media is referenced throughout the store (no blob storage backend).
func DataURL(jpegData []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegData)
}
