package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)
)

// Source styles
var (
	LocalBinStyle = lipgloss.NewStyle().
			Foreground(LocalBinColor).
			Bold(true)

	ExecutableStyle = lipgloss.NewStyle().
			Foreground(ExecutableColor).
			Bold(true)

	AuxiliaryStyle = lipgloss.NewStyle().
			Foreground(AuxiliaryColor).
			Bold(true)

	InheritedStyle = lipgloss.NewStyle().
			Foreground(InheritedColor)
)

// SourceStyle returns the style for an entry source name
func SourceStyle(source string) lipgloss.Style {
	switch source {
	case "local-bin":
		return LocalBinStyle
	case "executable":
		return ExecutableStyle
	case "auxiliary":
		return AuxiliaryStyle
	case "inherited":
		return InheritedStyle
	default:
		return MutedStyle
	}
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
