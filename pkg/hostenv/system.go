package hostenv

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/pixelbound/clientprint/pkg/audiosynth"
	"github.com/pixelbound/clientprint/pkg/raster"
)

// System returns an Environment reading the local host. Attributes a bare
// host has no notion of — display geometry, cookie store, plugins, touch,
// 3-D renderer diagnostics — read as unavailable and end up as sentinels
// in the canonical string; the offscreen surface and the offline audio
// graph are fully synthetic and work everywhere.
func System() Environment {
	return systemEnv{}
}

type systemEnv struct{}

func (systemEnv) UserAgent() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	// Hostnames can be FQDNs; only the first label is stable enough.
	host, _, _ = strings.Cut(host, ".")
	return fmt.Sprintf("%s (%s; %s) %s", host, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func (systemEnv) Screen() (int, int, error) {
	return 0, 0, ErrUnavailable
}

func (systemEnv) Timezone() (string, error) {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz, nil
	}
	name, _ := time.Now().Zone()
	if name == "" {
		return "", ErrUnavailable
	}
	return name, nil
}

func (systemEnv) Language() (string, error) {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := os.Getenv(key)
		if raw == "" || raw == "C" || raw == "POSIX" {
			continue
		}
		// Locale values carry an encoding suffix ("en_US.UTF-8").
		raw, _, _ = strings.Cut(raw, ".")
		tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
		if err != nil {
			continue
		}
		return tag.String(), nil
	}
	return "", ErrUnavailable
}

func (systemEnv) Platform() (string, error) {
	return runtime.GOOS + "/" + runtime.GOARCH, nil
}

func (systemEnv) DoNotTrack() (string, bool) {
	// The DO_NOT_TRACK environment variable is the console equivalent of
	// the browser preference (consoledonottrack.com).
	return os.LookupEnv("DO_NOT_TRACK")
}

func (systemEnv) HardwareConcurrency() (int, bool) {
	n := runtime.NumCPU()
	if n <= 0 {
		return 0, false
	}
	return n, true
}

func (systemEnv) CookiesEnabled() bool { return false }

func (systemEnv) Plugins() []string { return nil }

func (systemEnv) TouchSupport() (bool, int) { return false, 0 }

func (systemEnv) Fonts(ctx context.Context) ([]string, error) {
	return enumerateFonts(ctx)
}

func (systemEnv) Canvas(width, height int) (Surface, error) {
	surface, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}
	return surface, nil
}

func (systemEnv) Renderer() (string, string, error) {
	return "", "", ErrUnavailable
}

func (systemEnv) AudioSamples(ctx context.Context) ([]byte, error) {
	return audiosynth.NewGraph().ByteFrequencyData(ctx)
}
