package hostenv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelbound/clientprint/pkg/hostenv"
)

func TestStatic(t *testing.T) {
	t.Run("zero value reads as fully degraded", func(t *testing.T) {
		var env hostenv.Static

		_, _, err := env.Screen()
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)

		_, err = env.Timezone()
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)

		_, err = env.Language()
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)

		_, err = env.Platform()
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)

		_, ok := env.DoNotTrack()
		assert.False(t, ok)

		_, ok = env.HardwareConcurrency()
		assert.False(t, ok)

		_, err = env.Fonts(context.Background())
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)

		_, _, err = env.Renderer()
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)

		_, err = env.AudioSamples(context.Background())
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)
	})

	t.Run("populated values are returned verbatim", func(t *testing.T) {
		env := hostenv.Static{
			UA:              "Mozilla/5.0 (X11; Linux x86_64)",
			Width:           1920,
			Height:          1080,
			TimezoneName:    "Europe/Kyiv",
			LanguageTag:     "en-US",
			PlatformName:    "Linux x86_64",
			TrackingPref:    "1",
			HasTrackingPref: true,
			CPUs:            8,
			Cookies:         true,
			PluginNames:     []string{"PDF Viewer", "PDF Viewer"},
			HasTouch:        true,
			MaxTouchPoints:  5,
			FontFamilies:    []string{"Arial", "Helvetica"},
			RendererName:    "ANGLE (Intel)",
			VendorName:      "Google Inc.",
			AudioData:       []byte{1, 2, 3},
		}

		assert.Equal(t, "Mozilla/5.0 (X11; Linux x86_64)", env.UserAgent())

		w, h, err := env.Screen()
		require.NoError(t, err)
		assert.Equal(t, 1920, w)
		assert.Equal(t, 1080, h)

		tz, err := env.Timezone()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Kyiv", tz)

		pref, ok := env.DoNotTrack()
		assert.True(t, ok)
		assert.Equal(t, "1", pref)

		cpus, ok := env.HardwareConcurrency()
		assert.True(t, ok)
		assert.Equal(t, 8, cpus)

		touch, points := env.TouchSupport()
		assert.True(t, touch)
		assert.Equal(t, 5, points)

		fonts, err := env.Fonts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Arial", "Helvetica"}, fonts)

		r, v, err := env.Renderer()
		require.NoError(t, err)
		assert.Equal(t, "ANGLE (Intel)", r)
		assert.Equal(t, "Google Inc.", v)

		audio, err := env.AudioSamples(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, audio)
	})

	t.Run("configured errors win over values", func(t *testing.T) {
		fontErr := errors.New("font subsystem offline")
		audioErr := errors.New("audio policy block")
		env := hostenv.Static{
			FontFamilies: []string{"Arial"},
			FontsErr:     fontErr,
			AudioData:    []byte{1},
			AudioErr:     audioErr,
		}

		_, err := env.Fonts(context.Background())
		assert.ErrorIs(t, err, fontErr)

		_, err = env.AudioSamples(context.Background())
		assert.ErrorIs(t, err, audioErr)
	})

	t.Run("canvas yields independent surfaces", func(t *testing.T) {
		env := hostenv.Static{}

		s1, err := env.Canvas(32, 32)
		require.NoError(t, err)
		s2, err := env.Canvas(32, 32)
		require.NoError(t, err)
		assert.NotSame(t, s1, s2)
	})

	t.Run("disabled canvas reads unavailable", func(t *testing.T) {
		env := hostenv.Static{CanvasDisabled: true}
		_, err := env.Canvas(32, 32)
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)
	})

	t.Run("blocking readers respect canceled context", func(t *testing.T) {
		env := hostenv.Static{FontFamilies: []string{"Arial"}, AudioData: []byte{1}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := env.Fonts(ctx)
		assert.ErrorIs(t, err, context.Canceled)

		_, err = env.AudioSamples(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSystem(t *testing.T) {
	env := hostenv.System()

	t.Run("identity string is stable and non-empty", func(t *testing.T) {
		ua := env.UserAgent()
		require.NotEmpty(t, ua)
		assert.Equal(t, ua, env.UserAgent())
	})

	t.Run("platform is always readable", func(t *testing.T) {
		platform, err := env.Platform()
		require.NoError(t, err)
		assert.Contains(t, platform, "/")
	})

	t.Run("processor count is readable", func(t *testing.T) {
		n, ok := env.HardwareConcurrency()
		assert.True(t, ok)
		assert.Positive(t, n)
	})

	t.Run("screen and renderer are unavailable on a bare host", func(t *testing.T) {
		_, _, err := env.Screen()
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)

		_, _, err = env.Renderer()
		assert.ErrorIs(t, err, hostenv.ErrUnavailable)
	})

	t.Run("timezone honors TZ variable", func(t *testing.T) {
		t.Setenv("TZ", "Europe/Madrid")
		tz, err := env.Timezone()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Madrid", tz)
	})

	t.Run("language is canonicalized from locale variables", func(t *testing.T) {
		t.Setenv("LC_ALL", "en_US.UTF-8")
		lang, err := env.Language()
		require.NoError(t, err)
		assert.Equal(t, "en-US", lang)
	})

	t.Run("tracking preference follows DO_NOT_TRACK", func(t *testing.T) {
		t.Setenv("DO_NOT_TRACK", "1")
		pref, ok := env.DoNotTrack()
		assert.True(t, ok)
		assert.Equal(t, "1", pref)
	})

	t.Run("audio capture is deterministic", func(t *testing.T) {
		a, err := env.AudioSamples(context.Background())
		require.NoError(t, err)
		b, err := env.AudioSamples(context.Background())
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}
