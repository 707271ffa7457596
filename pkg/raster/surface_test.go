package raster_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelbound/clientprint/pkg/raster"
)

func TestNew(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {0, 0}} {
			_, err := raster.New(dims[0], dims[1])
			assert.ErrorIs(t, err, raster.ErrInvalidSize)
		}
	})

	t.Run("creates surface of requested size", func(t *testing.T) {
		s, err := raster.New(240, 60)
		require.NoError(t, err)
		assert.Equal(t, 240, s.Bounds().Dx())
		assert.Equal(t, 60, s.Bounds().Dy())
	})
}

func TestEncodePNG(t *testing.T) {
	draw := func(t *testing.T) []byte {
		t.Helper()
		s, err := raster.New(200, 50)
		require.NoError(t, err)

		s.FillRect(2, 2, 100, 30, color.NRGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff})
		s.DrawText("Cwm fjordbank glyphs vext quiz", 4, 22, color.NRGBA{B: 0x99, G: 0x66, A: 0xff})
		s.FillRect(50, 10, 80, 30, color.NRGBA{R: 0xff, A: 0x80})

		data, err := s.EncodePNG()
		require.NoError(t, err)
		return data
	}

	t.Run("identical draw sequences encode identically", func(t *testing.T) {
		assert.Equal(t, draw(t), draw(t))
	})

	t.Run("produces a PNG stream", func(t *testing.T) {
		data := draw(t)
		require.GreaterOrEqual(t, len(data), 8)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
	})

	t.Run("different scenes encode differently", func(t *testing.T) {
		s1, err := raster.New(64, 64)
		require.NoError(t, err)
		s1.FillRect(0, 0, 32, 32, color.NRGBA{R: 0xff, A: 0xff})
		d1, err := s1.EncodePNG()
		require.NoError(t, err)

		s2, err := raster.New(64, 64)
		require.NoError(t, err)
		s2.FillRect(0, 0, 32, 32, color.NRGBA{G: 0xff, A: 0xff})
		d2, err := s2.EncodePNG()
		require.NoError(t, err)

		assert.NotEqual(t, d1, d2)
	})

	t.Run("translucent fill composites over prior pixels", func(t *testing.T) {
		s1, err := raster.New(16, 16)
		require.NoError(t, err)
		s1.FillRect(0, 0, 16, 16, color.NRGBA{B: 0xff, A: 0xff})
		d1, err := s1.EncodePNG()
		require.NoError(t, err)

		s2, err := raster.New(16, 16)
		require.NoError(t, err)
		s2.FillRect(0, 0, 16, 16, color.NRGBA{B: 0xff, A: 0xff})
		s2.FillRect(0, 0, 16, 16, color.NRGBA{R: 0xff, A: 0x80})
		d2, err := s2.EncodePNG()
		require.NoError(t, err)

		assert.NotEqual(t, d1, d2, "overlay should change the composited pixels")
	})
}
