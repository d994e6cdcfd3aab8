package fontkit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFontNotFound is returned by a Locator when no font file matches the
// requested family.
var ErrFontNotFound = errors.New("fontkit: font not found")

// Locator turns a font family name into a font file path.
//
// Implementations are injected into a Provider so that platform-specific
// search lists can be swapped or stubbed in tests without touching the
// compositor.
type Locator interface {
	// Locate returns the path of a font file for the given family, or
	// ErrFontNotFound (possibly wrapped) when the family cannot be found.
	Locate(family string) (string, error)
}

// systemFontDirs are probed in order by PathLocator. The list mirrors the
// usual install locations on macOS, Windows and Linux.
var systemFontDirs = []string{
	"/System/Library/Fonts",
	"/System/Library/Fonts/Supplemental",
	"/Library/Fonts",
	"C:/Windows/Fonts",
	"/usr/share/fonts/truetype/liberation",
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/truetype",
	"/usr/local/share/fonts",
}

// familyAliases maps well-known family names to file candidates that render
// acceptably in their place when the exact face is not installed.
var familyAliases = map[string][]string{
	"arial":     {"Arial.ttf", "arial.ttf", "LiberationSans-Regular.ttf", "DejaVuSans.ttf"},
	"helvetica": {"Helvetica.ttc", "LiberationSans-Regular.ttf", "DejaVuSans.ttf"},
	"times":     {"Times New Roman.ttf", "times.ttf", "LiberationSerif-Regular.ttf", "DejaVuSerif.ttf"},
	"courier":   {"Courier New.ttf", "cour.ttf", "LiberationMono-Regular.ttf", "DejaVuSansMono.ttf"},
}

// PathLocator locates fonts by probing a list of directories.
//
// The zero value probes the built-in system directory list. Dirs, when set,
// is probed first. The directory named by the BUBBLETEXT_FONT_DIR
// environment variable, when set, is probed before anything else.
type PathLocator struct {
	// Dirs are additional directories probed before the system list.
	Dirs []string
}

// Locate implements Locator.
//
// A family that is itself a path to an existing .ttf/.ttc/.otf file is
// returned as-is, so callers can pass explicit font files through the
// family field.
func (l *PathLocator) Locate(family string) (string, error) {
	family = strings.TrimSpace(family)
	if family == "" {
		return "", fmt.Errorf("empty family: %w", ErrFontNotFound)
	}

	if isFontPath(family) {
		if _, err := os.Stat(family); err == nil {
			return family, nil
		}
	}

	dirs := make([]string, 0, len(systemFontDirs)+len(l.Dirs)+1)
	if env := os.Getenv("BUBBLETEXT_FONT_DIR"); env != "" {
		dirs = append(dirs, env)
	}
	dirs = append(dirs, l.Dirs...)
	dirs = append(dirs, systemFontDirs...)

	for _, name := range candidateFileNames(family) {
		for _, dir := range dirs {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("family %q: %w", family, ErrFontNotFound)
}

// candidateFileNames returns file names to probe for a family, most specific
// first.
func candidateFileNames(family string) []string {
	lower := strings.ToLower(family)
	names := make([]string, 0, 8)
	if aliases, ok := familyAliases[lower]; ok {
		names = append(names, aliases...)
	}
	names = append(names,
		family+".ttf",
		lower+".ttf",
		titleCase(lower)+".ttf",
		family+".otf",
		lower+".otf",
	)
	return names
}

// isFontPath reports whether s looks like a path to a font file rather than
// a bare family name.
func isFontPath(s string) bool {
	if !strings.ContainsAny(s, `/\`) {
		ext := strings.ToLower(filepath.Ext(s))
		return ext == ".ttf" || ext == ".otf" || ext == ".ttc"
	}
	return true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
