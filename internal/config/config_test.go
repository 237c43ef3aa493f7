package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "card.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTripWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "card.json")
	want := Default()
	want.Seed = 99
	want.ShowFPS = true
	want.DeckPath = "decks/family.yaml"
	require.NoError(t, Save(path, want))
	assert.True(t, Exists(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	t.Setenv("XMAS_CARD_SEED", "1234")
	t.Setenv("XMAS_CARD_MUTED", "true")
	got, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), got.Seed)
	assert.True(t, got.Muted)
	assert.Equal(t, "decks/family.yaml", got.DeckPath, "unset variables keep the file value")
}

func TestLoadPartialFileFillsSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fullscreen": true}`), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.Fullscreen)
	assert.Equal(t, Default().Width, p.Width)
	assert.Equal(t, Default().PointSize, p.PointSize)
	assert.Equal(t, Default().MusicPath, p.MusicPath)
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed":5}`), 0644))
	p, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Seed = 5
	assert.Equal(t, want, p)

	require.NoError(t, os.WriteFile(path, []byte(`{"music_path":"", "width": 0}`), 0644))
	p, err = Load(path)
	require.NoError(t, err)
	assert.Empty(t, p.MusicPath, "an explicit empty value overrides the default")
	assert.Equal(t, Default().Width, p.Width)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("XMAS_CARD_SEED", "lots")
	_, err := Load(filepath.Join(t.TempDir(), "card.json"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment\n\nexport XMAS_CARD_TEST_A=\"quoted value\"\nXMAS_CARD_TEST_B = plain\nXMAS_CARD_TEST_C='kept'\nnot a pair\n=novalue\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("XMAS_CARD_TEST_C", "from env")
	t.Setenv("XMAS_CARD_TEST_A", "")
	os.Unsetenv("XMAS_CARD_TEST_A")
	t.Setenv("XMAS_CARD_TEST_B", "")
	os.Unsetenv("XMAS_CARD_TEST_B")

	n, err := LoadDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "quoted value", os.Getenv("XMAS_CARD_TEST_A"))
	assert.Equal(t, "plain", os.Getenv("XMAS_CARD_TEST_B"))
	assert.Equal(t, "from env", os.Getenv("XMAS_CARD_TEST_C"))

	n, err = LoadDotEnv(filepath.Join(t.TempDir(), "missing"))
	assert.NoError(t, err)
	assert.Zero(t, n)
}
