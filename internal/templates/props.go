package templates

import (
	"embed"
	"html/template"
)

//go:embed html/*.html
var files embed.FS

// Load parses every page. Pages are addressed by file name, e.g.
// c.HTML(200, "login.html", LoginPageProps{...}).
func Load() (*template.Template, error) {
	return template.ParseFS(files, "html/*.html")
}

// BaseProps contains common properties shared across all pages
type BaseProps struct {
	CSRFToken string
}

// LoginPageProps contains properties for the login page
type LoginPageProps struct {
	BaseProps
	Email string
	Error string
	Next  string
}

// AuthorizePageProps contains properties for the OAuth consent page
type AuthorizePageProps struct {
	BaseProps
	AppName    string
	OAuthToken string
	UserEmail  string
}
