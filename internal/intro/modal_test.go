package intro

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"xmas-card/internal/logger"
)

func TestSubmitTrimsAndCloses(t *testing.T) {
	m := New(logger.NewAt(""))
	var got string
	m.OnSubmit = func(name string) { got = name }

	m.Type([]rune("  Noël ")...)
	assert.True(t, m.Submit())
	assert.Equal(t, "Noël", got)
	assert.False(t, m.IsOpen())
	assert.False(t, m.Submit(), "a closed modal submits nothing")
}

func TestBlankNameKeepsModalOpen(t *testing.T) {
	m := New(nil)
	called := false
	m.OnSubmit = func(string) { called = true }
	m.Type(' ', ' ')
	assert.False(t, m.Submit())
	assert.True(t, m.IsOpen())
	assert.False(t, called)
}

func TestTypeAndBackspace(t *testing.T) {
	m := New(nil)
	m.Type('A', '\n', 'd', '\t', 'é')
	assert.Equal(t, "Adé", m.Input())
	m.Backspace()
	assert.Equal(t, "Ad", m.Input())
	m.Backspace()
	m.Backspace()
	m.Backspace()
	assert.Empty(t, m.Input())
}

func TestNameIsCapped(t *testing.T) {
	m := New(nil)
	m.Type([]rune(strings.Repeat("x", MaxNameRunes+10))...)
	assert.Len(t, m.Input(), MaxNameRunes)
}
