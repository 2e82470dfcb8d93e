package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/sling-library/internal/httperr"
)

var ErrInvalidImage = httperr.ErrBusiness("invalid_image")

// Transcoder turns uploaded carrier photos into webp no wider than MaxWidth.
type Transcoder struct {
	MaxWidth int
	Quality  float32
}

func NewTranscoder(maxWidth, quality int) *Transcoder {
	return &Transcoder{MaxWidth: maxWidth, Quality: float32(quality)}
}

// ToWebP decodes jpeg, png, gif or webp input. Anything else is
// ErrInvalidImage.
func (t *Transcoder) ToWebP(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, ErrInvalidImage
	}

	img := t.resize(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: t.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Transcoder) resize(src image.Image) image.Image {
	b := src.Bounds()
	if t.MaxWidth <= 0 || b.Dx() <= t.MaxWidth {
		return src
	}

	height := b.Dy() * t.MaxWidth / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, t.MaxWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
