package fingerprint

import (
	"context"
	"image/color"

	"github.com/pixelbound/clientprint/pkg/bufhash"
	"github.com/pixelbound/clientprint/pkg/hostenv"
)

// The rendered scene is a build constant: fixed text, fixed colors, fixed
// geometry, fixed compositing. Any change here changes every canvas signal
// ever produced.
const (
	canvasWidth  = 280
	canvasHeight = 60
	canvasText   = "Cwm fjordbank glyphs vext quiz"
)

var (
	canvasBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	canvasBox        = color.NRGBA{R: 0xff, G: 0x66, A: 0xff}
	canvasInk        = color.NRGBA{G: 0x66, B: 0x99, A: 0xff}
	canvasOverlay    = color.NRGBA{R: 0x66, G: 0xcc, A: 0xb3}
)

// collectCanvas draws the fixed scene onto a fresh offscreen surface,
// encodes it losslessly, and compresses the bytes to a short token. The
// surface is owned by this single invocation; concurrent computations
// never share one.
func collectCanvas(_ context.Context, env hostenv.Environment) (string, error) {
	surface, err := env.Canvas(canvasWidth, canvasHeight)
	if err != nil {
		return "", err
	}

	surface.FillRect(0, 0, canvasWidth, canvasHeight, canvasBackground)
	surface.FillRect(125, 1, 62, 20, canvasBox)
	surface.DrawText(canvasText, 2, 15, canvasInk)
	surface.FillRect(0, 25, 140, 30, canvasOverlay)
	surface.DrawText(canvasText, 4, 45, canvasInk)

	encoded, err := surface.EncodePNG()
	if err != nil {
		return "", err
	}
	return bufhash.Sum(encoded), nil
}
