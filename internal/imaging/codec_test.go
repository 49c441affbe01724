package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 80, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()

	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestReencode_DownscalesWideImages(t *testing.T) {
	out, err := Reencode(pngImage(t, 1200, 900))
	require.NoError(t, err)

	img := decodeDataURI(t, out)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 450, img.Bounds().Dy(), "aspect ratio preserved")
}

func TestReencode_KeepsSmallImages(t *testing.T) {
	out, err := Reencode(pngImage(t, 300, 500))
	require.NoError(t, err)

	img := decodeDataURI(t, out)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 500, img.Bounds().Dy())
}

func TestReencode_ExactMaxWidthUntouched(t *testing.T) {
	out, err := Reencode(pngImage(t, MaxWidth, 200))
	require.NoError(t, err)

	img := decodeDataURI(t, out)
	assert.Equal(t, MaxWidth, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestReencode_RejectsGarbage(t *testing.T) {
	_, err := Reencode(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrDecode)
}
