package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed landing.html.tmpl
var templateFS embed.FS

var landingTmpl = template.Must(template.ParseFS(templateFS, "landing.html.tmpl"))

type pageView struct {
	*Document
	SchemaLD template.HTML
	Dark     bool
}

// WriteHTML renders the landing page document as a full HTML page.
func WriteHTML(w io.Writer, doc *Document) error {
	view := &pageView{
		Document: doc,
		// JSON-LD is built server-side from trusted fields; mark it safe so
		// html/template does not escape the script body.
		SchemaLD: template.HTML(doc.SEO.SchemaJSON),
		Dark:     doc.Theme == "dark" || (doc.Theme == "" && doc.Template.DarkDefault),
	}

	if err := landingTmpl.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render landing page: %w", err)
	}
	return nil
}
