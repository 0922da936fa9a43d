package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Format selects how output is rendered
type Format int

const (
	// FormatPlain renders without escape sequences
	FormatPlain Format = iota
	// FormatTerminal renders colors and bold text
	FormatTerminal
)

// DetectFormat decides whether w can show styled output. NO_COLOR, a
// non-terminal writer and a terminal without color support all mean plain.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatPlain
	}

	f, ok := w.(*os.File)
	if !ok {
		return FormatPlain
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatPlain
	}

	if termenv.NewOutput(f).EnvColorProfile() == termenv.Ascii {
		return FormatPlain
	}
	return FormatTerminal
}

// Configure makes the global lipgloss and pterm state follow format
func Configure(format Format) {
	if format == FormatPlain {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
		return
	}
	pterm.EnableStyling()
}

// NewRenderer returns the renderer for format
func NewRenderer(format Format) Renderer {
	if format == FormatTerminal {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}
