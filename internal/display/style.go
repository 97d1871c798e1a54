// Package display provides presentation styles for protection summaries.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/udisondev/blocklock/internal/model"
)

// Legacy chat color codes understood by game clients.
const (
	chatWhite = "§f"
	chatGreen = "§a"
)

// Plain renders text without markup.
type Plain struct{}

func (Plain) Frame(s string) string  { return s }
func (Plain) Detail(s string) string { return s }

// Chat prefixes text with in-game color codes: white frame, green body.
type Chat struct{}

func (Chat) Frame(s string) string  { return chatWhite + s }
func (Chat) Detail(s string) string { return chatGreen + s }

// Terminal colors text with ANSI sequences through lipgloss.
// Output degrades to plain text when stdout is not a color terminal.
type Terminal struct {
	frame  lipgloss.Style
	detail lipgloss.Style
}

// NewTerminal returns a Terminal style with a white frame and green body.
func NewTerminal() Terminal {
	return Terminal{
		frame:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
		detail: lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F")),
	}
}

func (t Terminal) Frame(s string) string  { return t.frame.Render(s) }
func (t Terminal) Detail(s string) string { return t.detail.Render(s) }

// ByName returns the style for a config value: "plain", "chat" or "terminal".
func ByName(name string) (model.Styler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return Plain{}, nil
	case "chat":
		return Chat{}, nil
	case "terminal":
		return NewTerminal(), nil
	}
	return nil, fmt.Errorf("unknown display style %q", name)
}

// StripChat removes chat color codes (the section sign and the code after it).
func StripChat(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	skip := false
	for _, r := range s {
		if skip {
			skip = false
			continue
		}
		if r == '§' {
			skip = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
