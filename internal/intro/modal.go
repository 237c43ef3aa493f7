package intro

import (
	"strings"
	"unicode"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"xmas-card/internal/logger"
)

const (
	// MaxNameRunes caps the entered name so it fits the greeting line.
	MaxNameRunes = 24

	boxWidth  = 520
	boxHeight = 240
	fontSize  = 24
	padding   = 24
)

var (
	// Reused every frame to avoid per-frame color allocations.
	backdropColor = rl.NewColor(0, 0, 0, 170)
	boxColor      = rl.NewColor(58, 10, 10, 245)
	boxLineColor  = rl.NewColor(212, 175, 55, 255)
	inputColor    = rl.NewColor(24, 6, 6, 255)
	hintColor     = rl.NewColor(200, 190, 170, 255)
)

// Modal is the name-entry dialog shown before the cards. While open it captures typing;
// Enter with a non-blank name closes it and calls OnSubmit with the trimmed name.
type Modal struct {
	log      *logger.Logger
	inputBuf string
	open     bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	OnSubmit func(name string)
}

// New returns an open modal.
func New(log *logger.Logger) *Modal {
	return &Modal{log: log, open: true}
}

// IsOpen reports whether the modal is showing and capturing input.
func (m *Modal) IsOpen() bool {
	return m.open
}

// Input returns the text typed so far.
func (m *Modal) Input() string {
	return m.inputBuf
}

// SetFont sets the font used to draw the modal. Zero texture ID = use raylib default.
func (m *Modal) SetFont(font rl.Font) {
	m.font = font
}

// Type appends printable runes to the input, up to MaxNameRunes.
func (m *Modal) Type(runes ...rune) {
	for _, r := range runes {
		if !unicode.IsPrint(r) || utf8.RuneCountInString(m.inputBuf) >= MaxNameRunes {
			continue
		}
		m.inputBuf += string(r)
	}
}

// Backspace removes the last rune of the input.
func (m *Modal) Backspace() {
	if len(m.inputBuf) == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(m.inputBuf)
	m.inputBuf = m.inputBuf[:len(m.inputBuf)-size]
}

// Submit closes the modal and reports the name if the input is not blank.
func (m *Modal) Submit() bool {
	name := strings.TrimSpace(m.inputBuf)
	if !m.open || name == "" {
		return false
	}
	m.open = false
	m.inputBuf = ""
	if m.log != nil {
		m.log.Infof("name entered: %s", name)
	}
	if m.OnSubmit != nil {
		m.OnSubmit(name)
	}
	return true
}

// Update handles typing, paste, backspace and Enter. Call once per frame.
func (m *Modal) Update() {
	if !m.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		m.Type([]rune(rl.GetClipboardText())...)
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			m.Type(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		m.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		m.Submit()
	}
}

// Draw dims the screen and draws the dialog centered. Nothing is drawn once closed.
func (m *Modal) Draw() {
	if !m.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, screenW, screenH, backdropColor)

	box := rl.NewRectangle(float32(screenW-boxWidth)/2, float32(screenH-boxHeight)/2, boxWidth, boxHeight)
	rl.DrawRectangleRounded(box, 0.1, 8, boxColor)
	rl.DrawRectangleRoundedLinesEx(box, 0.1, 8, 2, boxLineColor)

	x := box.X + padding
	y := box.Y + padding
	m.text("A Christmas card is waiting for you", x, y, fontSize, boxLineColor)
	m.text("Who should we address it to?", x, y+fontSize+12, fontSize-4, hintColor)

	field := rl.NewRectangle(x, y+96, boxWidth-2*padding, fontSize+20)
	rl.DrawRectangleRec(field, inputColor)
	rl.DrawRectangleLinesEx(field, 1, boxLineColor)
	m.text(m.inputBuf+"|", field.X+10, field.Y+10, fontSize, rl.White)

	m.text("Press Enter to open", x, box.Y+boxHeight-padding-fontSize+4, fontSize-6, hintColor)
}

func (m *Modal) text(s string, x, y float32, size int32, col rl.Color) {
	if m.font.Texture.ID != 0 {
		rl.DrawTextEx(m.font, s, rl.NewVector2(x, y), float32(size), 1, col)
	} else {
		rl.DrawText(s, int32(x), int32(y), size, col)
	}
}
