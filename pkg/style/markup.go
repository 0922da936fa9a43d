package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser renders [tag]text[/tag] markup with the package styles
type MarkupParser struct {
	styles   map[string]lipgloss.Style
	patterns map[string]*regexp.Regexp
}

// NewMarkupParser creates a parser knowing the base and source tags
func NewMarkupParser() *MarkupParser {
	p := &MarkupParser{
		styles:   make(map[string]lipgloss.Style),
		patterns: make(map[string]*regexp.Regexp),
	}
	for tag, style := range map[string]lipgloss.Style{
		"title":      TitleStyle,
		"muted":      MutedStyle,
		"error":      ErrorStyle,
		"path":       PathStyle,
		"bold":       lipgloss.NewStyle().Bold(true),
		"local-bin":  LocalBinStyle,
		"executable": ExecutableStyle,
		"auxiliary":  AuxiliaryStyle,
		"inherited":  InheritedStyle,
	} {
		p.AddStyle(tag, style)
	}
	return p
}

// AddStyle registers or replaces a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	quoted := regexp.QuoteMeta(tag)
	p.styles[tag] = style
	p.patterns[tag] = regexp.MustCompile(`\[` + quoted + `\](.*?)\[/` + quoted + `\]`)
}

// Render replaces every known tag pair with its styled content. Nested tags
// are handled by repeating until nothing changes.
func (p *MarkupParser) Render(text string) string {
	for {
		before := text
		for tag, pattern := range p.patterns {
			style := p.styles[tag]
			text = pattern.ReplaceAllStringFunc(text, func(match string) string {
				return style.Render(pattern.FindStringSubmatch(match)[1])
			})
		}
		if text == before {
			return text
		}
	}
}

// Strip removes every known tag pair, keeping the content
func (p *MarkupParser) Strip(text string) string {
	for {
		before := text
		for _, pattern := range p.patterns {
			text = pattern.ReplaceAllString(text, "$1")
		}
		if text == before {
			return text
		}
	}
}
