package topics

// Renderer turns a topic's raw content into what is printed. format is
// the topic file's extension, dot included.
type Renderer interface {
	Render(content string, format string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, format string) string

// Render implements Renderer
func (f RendererFunc) Render(content, format string) string { return f(content, format) }

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

// Render implements Renderer
func (PlainRenderer) Render(content string, _ string) string {
	return content
}
