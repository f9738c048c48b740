package web

import (
	"embed"
	"html/template"

	"github.com/dmitrijs2005/gophsecrets/internal/server/auth"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type formData struct {
	Name     string
	Email    string
	Username string
}

// page is the data passed to every template.
type page struct {
	Title        string
	ErrorMessage string
	FormData     formData
	Secrets      []*models.Secret
	User         *auth.Claims
}
