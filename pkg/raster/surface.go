package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Surface is an offscreen RGBA raster with the drawing primitives the
// image signal needs: filled rectangles, bitmap text, and a lossless PNG
// encode. Each Surface owns its pixel buffer; nothing is shared between
// instances, so independent fingerprint computations never contend.
type Surface struct {
	img *image.RGBA
}

// New allocates an offscreen surface of the given size with a fully
// transparent background.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// FillRect fills the given rectangle with c, compositing over existing
// pixels so translucent fills blend rather than replace.
func (s *Surface) FillRect(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h)
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawText renders text in the fixed 7x13 bitmap face with its baseline at
// (x, y). The face never varies, keeping glyph rasterization identical
// across runs.
func (s *Surface) DrawText(text string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// EncodePNG encodes the current pixels as a lossless PNG byte stream.
// Identical draw sequences yield byte-identical encodings.
func (s *Surface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Bounds returns the surface dimensions.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Bounds()
}
