// Package imaging re-encodes user photos into size-bounded data URIs so
// they can live next to catalog data in the key-value store.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxWidth is the widest an encoded image may be, in pixels.
	MaxWidth = 600
	// Quality is the JPEG quality factor (0.7 on a 0-1 scale).
	Quality = 70
)

// ErrDecode marks input bytes that cannot be interpreted as an image.
var ErrDecode = errors.New("cannot decode image")

// Reencode decodes r, downsamples to MaxWidth preserving aspect ratio, and
// returns the result as a base64 JPEG data URI. Inputs at or under MaxWidth
// keep their dimensions.
func Reencode(r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > MaxWidth {
		scale := float64(MaxWidth) / float64(w)
		h = int(float64(h) * scale)
		if h < 1 {
			h = 1
		}
		w = MaxWidth

		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: Quality}); err != nil {
		return "", err
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
