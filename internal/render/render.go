// Package render plugs html/template into Echo. Templates are embedded
// so the binary and the tests need no working-directory setup.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded template set
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. Panics on a malformed template,
// which is a build defect rather than a runtime condition.
func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render renders a named template into w
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// RenderBytes renders a named template into a byte slice, used by the
// page cache to store finished pages.
func (r *Renderer) RenderBytes(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
