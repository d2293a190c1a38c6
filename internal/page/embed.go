package page

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// pageTemplate renders the themed page skeleton.
var pageTemplate = template.Must(template.ParseFS(embeddedTemplates, "templates/page.html.tmpl"))
