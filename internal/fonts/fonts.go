package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd),
// so fonts are found whether run from the repo root or cmd/card.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Lora/Lora-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFontFile(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFontFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Resolve turns the configured font name into a loadable path. An existing file path is
// returned as is; anything else is searched for under BaseDirs. Empty name = no font.
func Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", os.ErrNotExist
	}
	if isFontFile(name) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	_, full, err := FindFontIn(BaseDirs(), name)
	return full, err
}

// FindFont searches BaseDirs for a font file whose path matches the search term.
func FindFont(search string) (relPath string, fullPath string, err error) {
	return FindFontIn(BaseDirs(), search)
}

// FindFontIn searches dirs for a font file whose path matches search (a family like
// "Lora" or "Great Vibes", or a partial path like "Lora-Regular"). It returns the
// relative path and the full path of the match.
// When multiple files match, prefers one whose path contains "Regular".
func FindFontIn(dirs []string, search string) (relPath string, fullPath string, err error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", "", os.ErrNotExist
	}
	var candidates []struct{ rel, full string }
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				candidates = append(candidates, struct{ rel, full string }{rel, filepath.Join(base, rel)})
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", os.ErrNotExist
	}
	// Prefer path containing "regular" when multiple match
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return candidates[0].rel, candidates[0].full, nil
}
