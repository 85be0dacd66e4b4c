package typography

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// ErrFontNotFound indicates no system font matched the requested family
// and weight.
var ErrFontNotFound = errors.New("typography: font not found")

// weightTolerance is the accepted distance from the requested weight on
// the CSS 100..900 scale, one full step.
const weightTolerance = 100

// weightKeywords maps subfamily and file-name fragments to CSS weights.
// Compound names are listed before their suffixes so "extrabold" never
// classifies as "bold".
var weightKeywords = []struct {
	fragment string
	weight   int
}{
	{"extrabold", 800},
	{"ultrabold", 800},
	{"semibold", 600},
	{"demibold", 600},
	{"extralight", 200},
	{"ultralight", 200},
	{"thin", 100},
	{"light", 300},
	{"medium", 500},
	{"bold", 700},
	{"black", 900},
	{"heavy", 900},
}

// weightFromName classifies a lowercase font name fragment into a CSS
// weight, defaulting to 400 (regular).
func weightFromName(name string) int {
	var entry struct {
		fragment string
		weight   int
	}
	for _, entry = range weightKeywords {
		if strings.Contains(name, entry.fragment) {
			return entry.weight
		}
	}

	return 400
}

// fontDirs returns the platform's conventional font directories.
func fontDirs() []string {
	var home, _ = os.UserHomeDir()

	switch runtime.GOOS {
	case "windows":
		var windir = os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}

		return []string{filepath.Join(windir, "Fonts")}
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	default:
		return []string{
			"/usr/share/fonts",
			filepath.Join(home, ".fonts"),
		}
	}
}

// matchesFont reports whether the TrueType file at path carries the
// requested family (case-insensitive substring of the name table entry)
// within weightTolerance of the requested weight. Unreadable or
// malformed files never match.
func matchesFont(path, family string, weight int) bool {
	var data, errRead = os.ReadFile(path)
	if errRead != nil {
		return false
	}

	var fnt, errParse = sfnt.Parse(data)
	if errParse != nil {
		return false
	}

	var buf sfnt.Buffer
	var name, errName = fnt.Name(&buf, sfnt.NameIDFamily)
	if errName != nil || !strings.Contains(strings.ToLower(name), family) {
		return false
	}

	var subfamily, errSub = fnt.Name(&buf, sfnt.NameIDSubfamily)
	if errSub != nil {
		subfamily = ""
	}

	var got = weightFromName(strings.ToLower(subfamily) + " " + strings.ToLower(filepath.Base(path)))
	var diff = got - weight
	if diff < 0 {
		diff = -diff
	}

	return diff <= weightTolerance
}

// FindSystemFont walks the platform font directories for a TrueType
// (.ttf) file whose family name contains family (case-insensitive) and
// whose weight lies within ±100 of weight on the CSS scale. It returns
// the path of the first match, or ErrFontNotFound.
func FindSystemFont(family string, weight int) (string, error) {
	var target = strings.ToLower(family)

	var dir string
	for _, dir = range fontDirs() {
		var found string
		// Walk errors (missing dirs, unreadable entries) only prune,
		// never abort the search.
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(strings.ToLower(d.Name()), ".ttf") {
				return nil
			}
			if matchesFont(path, target, weight) {
				found = path

				return fs.SkipAll
			}

			return nil
		})
		if found != "" {
			return found, nil
		}
	}

	return "", fmt.Errorf("%w: %q weight %d", ErrFontNotFound, family, weight)
}
