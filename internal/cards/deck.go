package cards

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"xmas-card/internal/particles"
)

// NamePlaceholder is replaced with the recipient's name by Personalize.
const NamePlaceholder = "[Name]"

// ErrEmptyDeck is returned when a deck file defines no cards.
var ErrEmptyDeck = errors.New("deck has no cards")

//go:embed default_cards.yaml
var defaultDeck []byte

// Card is one message card. Shape selects the particle silhouette shown while the card is in front.
type Card struct {
	ID     int
	Shape  particles.Shape
	Title  string
	Text   string
	Accent string // hex color for the title and border, e.g. "#1a472a"
}

// cardDef is the YAML form of a card (see default_cards.yaml).
type cardDef struct {
	ID     int        `yaml:"id"`
	Shape  shapeField `yaml:"shape"`
	Title  string     `yaml:"title"`
	Text   string     `yaml:"text"`
	Accent string     `yaml:"accent,omitempty"`
}

// shapeField decodes a card's shape through particles.Shape's text unmarshalling,
// keeping unknown names as a Tree plus the error so the deck can warn instead of failing.
// A missing shape key leaves err nil and known false.
type shapeField struct {
	particles.Shape
	known bool
	err   error
}

func (f *shapeField) UnmarshalYAML(value *yaml.Node) error {
	f.err = f.Shape.UnmarshalText([]byte(value.Value))
	f.known = f.err == nil
	return nil
}

type deckDef struct {
	Cards []cardDef `yaml:"cards"`
}

// Deck is an ordered stack of cards; index 0 is the front card.
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding a copy of cards.
func NewDeck(cards []Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d, nil
}

// Default returns the built-in deck.
func Default() *Deck {
	d, _, err := Parse(defaultDeck)
	if err != nil {
		panic("cards: embedded deck: " + err.Error())
	}
	return d
}

// Load reads a deck from a YAML file. An empty path returns the built-in deck.
// The returned warnings describe cards whose shape name was not recognized
// (those cards fall back to the tree).
func Load(path string) (*Deck, []string, error) {
	if path == "" {
		return Default(), nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read deck: %w", err)
	}
	d, warnings, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return d, warnings, nil
}

// Parse decodes a YAML deck.
func Parse(data []byte) (*Deck, []string, error) {
	var def deckDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, nil, fmt.Errorf("parse deck: %w", err)
	}
	var warnings []string
	cards := make([]Card, 0, len(def.Cards))
	for i, cd := range def.Cards {
		shape := cd.Shape.Shape
		switch {
		case cd.Shape.err != nil:
			warnings = append(warnings, fmt.Sprintf("card %d (%q): %v, using %s", i+1, cd.Title, cd.Shape.err, shape))
		case !cd.Shape.known:
			warnings = append(warnings, fmt.Sprintf("card %d (%q): no shape, using %s", i+1, cd.Title, shape))
		}
		id := cd.ID
		if id == 0 {
			id = i + 1
		}
		cards = append(cards, Card{
			ID:     id,
			Shape:  shape,
			Title:  strings.TrimSpace(cd.Title),
			Text:   strings.TrimSpace(cd.Text),
			Accent: cd.Accent,
		})
	}
	d, err := NewDeck(cards)
	if err != nil {
		return nil, nil, err
	}
	return d, warnings, nil
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Front returns the card on top of the stack.
func (d *Deck) Front() Card {
	return d.cards[0]
}

// Next moves the front card to the back and returns the new front card.
func (d *Deck) Next() Card {
	first := d.cards[0]
	copy(d.cards, d.cards[1:])
	d.cards[len(d.cards)-1] = first
	return d.cards[0]
}

// Visible returns up to k cards from the front, front first.
func (d *Deck) Visible(k int) []Card {
	k = max(0, min(k, len(d.cards)))
	out := make([]Card, k)
	copy(out, d.cards[:k])
	return out
}

// Personalize replaces NamePlaceholder in every title and text with name.
func (d *Deck) Personalize(name string) {
	for i := range d.cards {
		d.cards[i].Title = strings.ReplaceAll(d.cards[i].Title, NamePlaceholder, name)
		d.cards[i].Text = strings.ReplaceAll(d.cards[i].Text, NamePlaceholder, name)
	}
}
