package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and its format (a file extension) and
	// returns text ready to print
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(content string, format string) string

// Render calls f
func (f RendererFunc) Render(content string, format string) string {
	return f(content, format)
}
