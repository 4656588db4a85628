// Package portrait encodes hero thumbnails as terminal graphics.
package portrait

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-sixel"
	xdraw "golang.org/x/image/draw"
)

// Supported encoders.
const (
	// EncoderPaletted dithers to the Plan9 palette and writes sixel with rasterm.
	EncoderPaletted = "paletted"
	// EncoderSixel lets go-sixel quantize the image itself.
	EncoderSixel = "sixel"
)

// DefaultMaxWidth is the widest portrait written, in pixels.
const DefaultMaxWidth = 240

// Encoders lists the valid encoder names.
var Encoders = []string{EncoderPaletted, EncoderSixel}

// Writer writes images as sixel graphics.
type Writer struct {
	out      io.Writer
	encoder  string
	maxWidth int
}

// NewWriter creates a writer using the named encoder.
func NewWriter(out io.Writer, encoder string) (*Writer, error) {
	switch encoder {
	case EncoderPaletted, EncoderSixel:
	default:
		return nil, fmt.Errorf("invalid encoder %q: must be one of %v", encoder, Encoders)
	}
	return &Writer{out: out, encoder: encoder, maxWidth: DefaultMaxWidth}, nil
}

// SetMaxWidth limits the output width. Non-positive values disable scaling.
func (w *Writer) SetMaxWidth(px int) {
	w.maxWidth = px
}

// Write scales img down to the maximum width and emits it.
func (w *Writer) Write(img image.Image) error {
	img = Fit(img, w.maxWidth)

	// Buffer so a failed encode does not leave half an escape sequence behind.
	var buf bytes.Buffer
	switch w.encoder {
	case EncoderSixel:
		enc := sixel.NewEncoder(&buf)
		enc.Dither = true
		if err := enc.Encode(img); err != nil {
			return fmt.Errorf("encoding sixel: %w", err)
		}
	default:
		if err := rasterm.SixelWriteImage(&buf, Paletted(img)); err != nil {
			return fmt.Errorf("encoding sixel: %w", err)
		}
	}

	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	return nil
}

// Fit scales img so it is at most maxWidth pixels wide, keeping the aspect
// ratio. Images already narrow enough are returned unchanged.
func Fit(img image.Image, maxWidth int) image.Image {
	b := img.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth || b.Dy() == 0 {
		return img
	}

	height := max(1, b.Dy()*maxWidth/b.Dx())
	scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, height))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Over, nil)
	return scaled
}

// Paletted dithers img onto the Plan9 palette.
func Paletted(img image.Image) *image.Paletted {
	if p, ok := img.(*image.Paletted); ok {
		return p
	}
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}
