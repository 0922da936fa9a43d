// Package style holds the colors, lipgloss styles and renderers used by the
// npmpath CLI. Output falls back to plain text when the writer is not a
// color terminal or NO_COLOR is set.
package style
