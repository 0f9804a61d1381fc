package http

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcMap = template.FuncMap{
	"seg":             url.PathEscape,
	"unitPath":        unitPath,
	"projectPath":     projectPath,
	"submissionsPath": submissionsPath,
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html"))
}

// ConfigureEngine prepares an engine for the dashboard routes: identifiers
// may contain escaped slashes, and pages render from the embedded templates.
func ConfigureEngine(r *gin.Engine) {
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.SetHTMLTemplate(Templates())
}

// page is the HTML template data. JSON clients receive View alone.
type page struct {
	Title string
	Tab   string
	View  any
}

func render(c *gin.Context, status int, name string, p page) {
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: name,
		HTMLData: p,
		JSONData: p.View,
	})
}
