package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"glint-backend/pkg/imaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompress(t *testing.T) {
	t.Run("Should downscale the longest edge to the cap", func(t *testing.T) {
		data := encodePNG(t, 1600, 400)

		out, err := imaging.Compress(data, imaging.MaxDimension, imaging.JPEGQuality)
		require.NoError(t, err)

		img, format, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.Equal(t, 800, img.Bounds().Dx())
		assert.Equal(t, 200, img.Bounds().Dy())
	})

	t.Run("Should keep small images at their size", func(t *testing.T) {
		data := encodePNG(t, 300, 200)

		out, err := imaging.Compress(data, imaging.MaxDimension, imaging.JPEGQuality)
		require.NoError(t, err)

		img, _, err := image.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 300, img.Bounds().Dx())
		assert.Equal(t, 200, img.Bounds().Dy())
	})

	t.Run("Should fail on non-image payloads", func(t *testing.T) {
		_, err := imaging.Compress([]byte("not an image"), imaging.MaxDimension, imaging.JPEGQuality)
		assert.Error(t, err)
	})
}

func TestDataURL(t *testing.T) {
	url := imaging.DataURL([]byte{0xFF, 0xD8})
	assert.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))
}
