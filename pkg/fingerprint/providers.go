package fingerprint

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pixelbound/clientprint/pkg/hostenv"
)

// CollectFunc reads one attribute from the environment and renders it as
// signal text. Returning an error means the signal is unavailable; the
// orchestrator substitutes the sentinel, so collectors never produce
// sentinel text for their own failures.
type CollectFunc func(ctx context.Context, env hostenv.Environment) (string, error)

// Provider is one named member of the signal set.
type Provider struct {
	Name    string
	Collect CollectFunc
}

// providers is the declared signal set. The slice index defines each
// signal's position in the canonical string and must stay stable across
// builds for fingerprints to be reproducible on an unchanged environment.
var providers = []Provider{
	{Name: "userAgent", Collect: collectUserAgent},
	{Name: "screen", Collect: collectScreen},
	{Name: "timezone", Collect: collectTimezone},
	{Name: "language", Collect: collectLanguage},
	{Name: "platform", Collect: collectPlatform},
	{Name: "doNotTrack", Collect: collectDoNotTrack},
	{Name: "hardwareConcurrency", Collect: collectHardwareConcurrency},
	{Name: "cookies", Collect: collectCookies},
	{Name: "plugins", Collect: collectPlugins},
	{Name: "touch", Collect: collectTouch},
	{Name: "fonts", Collect: collectFonts},
	{Name: "canvas", Collect: collectCanvas},
	{Name: "renderer", Collect: collectRenderer},
	{Name: "audio", Collect: collectAudio},
}

// Providers returns a copy of the declared signal set, in canonical order.
func Providers() []Provider {
	out := make([]Provider, len(providers))
	copy(out, providers)
	return out
}

// Fixed literals for boolean signals.
const (
	cookiesEnabled  = "CookiesEnabled"
	cookiesDisabled = "CookiesDisabled"
	touchSupported  = "TouchSupported"
	touchAbsent     = "TouchNotSupported"
)

func collectUserAgent(_ context.Context, env hostenv.Environment) (string, error) {
	return env.UserAgent(), nil
}

func collectScreen(_ context.Context, env hostenv.Environment) (string, error) {
	w, h, err := env.Screen()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%dx%d", w, h), nil
}

func collectTimezone(_ context.Context, env hostenv.Environment) (string, error) {
	return env.Timezone()
}

func collectLanguage(_ context.Context, env hostenv.Environment) (string, error) {
	return env.Language()
}

func collectPlatform(_ context.Context, env hostenv.Environment) (string, error) {
	return env.Platform()
}

func collectDoNotTrack(_ context.Context, env hostenv.Environment) (string, error) {
	pref, ok := env.DoNotTrack()
	if !ok {
		return sentinel, nil
	}
	return pref, nil
}

func collectHardwareConcurrency(_ context.Context, env hostenv.Environment) (string, error) {
	n, ok := env.HardwareConcurrency()
	if !ok || n <= 0 {
		return sentinel, nil
	}
	return strconv.Itoa(n), nil
}

func collectCookies(_ context.Context, env hostenv.Environment) (string, error) {
	if env.CookiesEnabled() {
		return cookiesEnabled, nil
	}
	return cookiesDisabled, nil
}

// collectPlugins renders the installed plugin names deduplicated and
// semicolon-joined. An empty plugin list is a real value, not an absence,
// so it renders as "" rather than the sentinel.
func collectPlugins(_ context.Context, env hostenv.Environment) (string, error) {
	return strings.Join(dedup(env.Plugins()), ";"), nil
}

func collectTouch(_ context.Context, env hostenv.Environment) (string, error) {
	supported, maxPoints := env.TouchSupport()
	if supported || maxPoints > 0 {
		return touchSupported, nil
	}
	return touchAbsent, nil
}

func collectFonts(ctx context.Context, env hostenv.Environment) (string, error) {
	families, err := env.Fonts(ctx)
	if err != nil {
		return "", err
	}
	return strings.Join(dedup(families), ";"), nil
}

// collectRenderer concatenates the renderer and vendor identifiers with no
// delimiter between them.
func collectRenderer(_ context.Context, env hostenv.Environment) (string, error) {
	renderer, vendor, err := env.Renderer()
	if err != nil {
		return "", err
	}
	return renderer + vendor, nil
}

func collectAudio(ctx context.Context, env hostenv.Environment) (string, error) {
	samples, err := env.AudioSamples(ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, s := range samples {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}
	return b.String(), nil
}

// dedup removes duplicates preserving first-occurrence order. The host's
// reported order is part of the environment state, so it is kept.
func dedup(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
