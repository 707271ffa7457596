package hostenv

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// fontDirs returns the conventional font locations for the current OS.
// Directories that do not exist are simply skipped during enumeration.
func fontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	case "windows":
		if windir := os.Getenv("WINDIR"); windir != "" {
			return []string{filepath.Join(windir, "Fonts")}
		}
		return []string{`C:\Windows\Fonts`}
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"),
			)
		}
		return dirs
	}
}

// enumerateFonts walks the host font directories and returns the distinct
// family names, derived from file names, in sorted order. The sort keeps
// the signal independent of directory iteration order.
func enumerateFonts(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})

	for _, dir := range fontDirs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Walk errors on individual entries are ignored: partially readable
		// font trees still yield a usable enumeration.
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if name, ok := fontFamily(d.Name()); ok {
				seen[name] = struct{}{}
			}
			return nil
		})
	}

	if len(seen) == 0 {
		return nil, ErrUnavailable
	}

	families := make([]string, 0, len(seen))
	for name := range seen {
		families = append(families, name)
	}
	sort.Strings(families)
	return families, nil
}

// fontFamily extracts a family name from a font file name, reporting false
// for files that are not fonts.
func fontFamily(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ttf", ".otf", ".ttc", ".woff", ".woff2":
	default:
		return "", false
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	// Strip common style suffixes so "DejaVuSans-Bold" and "DejaVuSans"
	// count as one family.
	base, _, _ = strings.Cut(base, "-")
	if base == "" {
		return "", false
	}
	return base, true
}
