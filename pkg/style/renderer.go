package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/npmpath/pkg/errors"
	"github.com/arthur-debert/npmpath/pkg/npmpath"
)

// Renderer turns compositions and errors into text
type Renderer interface {
	RenderEntries(entries []npmpath.Entry) string
	RenderLegend() string
	RenderError(err error) string
}

// sourceWidth aligns the directory column
const sourceWidth = len("executable")

// legend describes each source; rendered as markdown
const legend = `## Search path sources

- **local-bin**: a node_modules/.bin directory found walking up from the working directory, nearest first
- **executable**: the directory of the running executable
- **auxiliary**: the node-gyp-bin directory bundled with npm
- **inherited**: entries of the search path already in the environment

Duplicates keep their first position.
`

// TerminalRenderer renders with colors
type TerminalRenderer struct {
	width  int
	markup *MarkupParser
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{
		width:  80,
		markup: NewMarkupParser(),
	}
}

// SetWidth updates the wrap width of the legend
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
}

// RenderEntries renders one line per entry with its source
func (r *TerminalRenderer) RenderEntries(entries []npmpath.Entry) string {
	if len(entries) == 0 {
		return MutedStyle.Render("empty search path")
	}

	var result strings.Builder
	for _, e := range entries {
		source := string(e.Source)
		line := fmt.Sprintf("[%s]%-*s[/%s] [path]%s[/path]", source, sourceWidth, source, source, e.Dir)
		result.WriteString(r.markup.Render(line) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

// RenderLegend renders the source legend through glamour
func (r *TerminalRenderer) RenderLegend() string {
	return renderMarkdown(legend, r.width, glamour.WithAutoStyle())
}

// RenderError renders an error with pterm's error prefix and its code
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s [%s] %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			ErrorStyle.Render(err.Error()))
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, ErrorStyle.Render(err.Error()))
}

// PlainRenderer renders without styling
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) RenderEntries(entries []npmpath.Entry) string {
	var result strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&result, "%-*s %s\n", sourceWidth, e.Source, e.Dir)
	}
	return strings.TrimRight(result.String(), "\n")
}

func (r *PlainRenderer) RenderLegend() string {
	return renderMarkdown(legend, 0, glamour.WithStandardStyle("notty"))
}

func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", err.Error())
}

// renderMarkdown falls back to the raw markdown when glamour fails
func renderMarkdown(content string, width int, style glamour.TermRendererOption) string {
	options := []glamour.TermRendererOption{style}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
