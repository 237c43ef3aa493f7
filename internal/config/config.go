package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// PrefsPath is the preferences file, relative to the process working directory.
const PrefsPath = "config/card.json"

// Prefs holds the card's runtime preferences. They are read from PrefsPath and can be
// overridden per run with XMAS_CARD_* environment variables (or a .env file).
type Prefs struct {
	// Seed drives every procedural shape and the star field; 0 picks a fresh seed per run.
	Seed       uint64  `json:"seed"                  env:"XMAS_CARD_SEED"`
	Fullscreen bool    `json:"fullscreen"            env:"XMAS_CARD_FULLSCREEN"`
	Width      int32   `json:"width"                 env:"XMAS_CARD_WIDTH"`
	Height     int32   `json:"height"                env:"XMAS_CARD_HEIGHT"`
	ShowFPS    bool    `json:"show_fps"              env:"XMAS_CARD_SHOW_FPS"`
	MusicPath  string  `json:"music_path,omitempty"  env:"XMAS_CARD_MUSIC"`
	Muted      bool    `json:"muted"                 env:"XMAS_CARD_MUTED"`
	DeckPath   string  `json:"deck_path,omitempty"   env:"XMAS_CARD_DECK"`
	FontName   string  `json:"font_name,omitempty"   env:"XMAS_CARD_FONT"`
	PointSize  float32 `json:"point_size"            env:"XMAS_CARD_POINT_SIZE"`
	StyleSheet string  `json:"stylesheet,omitempty"  env:"XMAS_CARD_CSS"`
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		Width:     1280,
		Height:    800,
		MusicPath: "assets/music/we-wish-you-a-merry-christmas.mp3",
		PointSize: 0.05,
	}
}

// Load reads preferences from path, falling back to Default when the file is missing
// or invalid, then applies environment overrides. Only a malformed environment
// variable is reported as an error; the file-based preferences are still returned.
func Load(path string) (Prefs, error) {
	p := Default()
	if data, err := os.ReadFile(path); err == nil {
		// Keys missing from the file keep their defaults.
		fromFile := p
		if json.Unmarshal(data, &fromFile) == nil {
			p = fromFile
		}
	}
	if err := env.Parse(&p); err != nil {
		return p.withDefaults(), fmt.Errorf("parse env: %w", err)
	}
	return p.withDefaults(), nil
}

// withDefaults replaces non-positive sizes so the window is always usable.
func (p Prefs) withDefaults() Prefs {
	d := Default()
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Height <= 0 {
		p.Height = d.Height
	}
	if p.PointSize <= 0 {
		p.PointSize = d.PointSize
	}
	return p
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Exists reports whether a preferences file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
