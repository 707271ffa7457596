package hostenv

import (
	"context"

	"github.com/pixelbound/clientprint/pkg/raster"
)

// Static is an Environment backed entirely by caller-supplied values.
//
// It serves two purposes: server-side fingerprinting of attributes a
// client reported out-of-band, and deterministic tests that need full
// control over every signal. The zero value is a maximally degraded
// environment — every optional attribute reads as unavailable.
type Static struct {
	UA           string
	Width        int
	Height       int
	TimezoneName string
	LanguageTag  string
	PlatformName string

	// TrackingPref is only meaningful when HasTrackingPref is true.
	TrackingPref    string
	HasTrackingPref bool

	// CPUs of zero reads as unavailable.
	CPUs int

	Cookies        bool
	PluginNames    []string
	HasTouch       bool
	MaxTouchPoints int

	// FontFamilies and FontsErr control Fonts; a set error wins.
	FontFamilies []string
	FontsErr     error

	// CanvasDisabled makes Canvas fail, simulating a host that cannot
	// create an offscreen surface.
	CanvasDisabled bool

	RendererName string
	VendorName   string

	// AudioData and AudioErr control AudioSamples; a set error wins, and
	// nil data with no error reads as unavailable.
	AudioData []byte
	AudioErr  error
}

var _ Environment = Static{}

func (s Static) UserAgent() string { return s.UA }

func (s Static) Screen() (int, int, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return 0, 0, ErrUnavailable
	}
	return s.Width, s.Height, nil
}

func (s Static) Timezone() (string, error) {
	if s.TimezoneName == "" {
		return "", ErrUnavailable
	}
	return s.TimezoneName, nil
}

func (s Static) Language() (string, error) {
	if s.LanguageTag == "" {
		return "", ErrUnavailable
	}
	return s.LanguageTag, nil
}

func (s Static) Platform() (string, error) {
	if s.PlatformName == "" {
		return "", ErrUnavailable
	}
	return s.PlatformName, nil
}

func (s Static) DoNotTrack() (string, bool) {
	return s.TrackingPref, s.HasTrackingPref
}

func (s Static) HardwareConcurrency() (int, bool) {
	if s.CPUs <= 0 {
		return 0, false
	}
	return s.CPUs, true
}

func (s Static) CookiesEnabled() bool { return s.Cookies }

func (s Static) Plugins() []string { return s.PluginNames }

func (s Static) TouchSupport() (bool, int) { return s.HasTouch, s.MaxTouchPoints }

func (s Static) Fonts(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.FontsErr != nil {
		return nil, s.FontsErr
	}
	if len(s.FontFamilies) == 0 {
		return nil, ErrUnavailable
	}
	return s.FontFamilies, nil
}

func (s Static) Canvas(width, height int) (Surface, error) {
	if s.CanvasDisabled {
		return nil, ErrUnavailable
	}
	surface, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}
	return surface, nil
}

func (s Static) Renderer() (string, string, error) {
	if s.RendererName == "" && s.VendorName == "" {
		return "", "", ErrUnavailable
	}
	return s.RendererName, s.VendorName, nil
}

func (s Static) AudioSamples(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.AudioErr != nil {
		return nil, s.AudioErr
	}
	if len(s.AudioData) == 0 {
		return nil, ErrUnavailable
	}
	return s.AudioData, nil
}
