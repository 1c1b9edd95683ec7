package generator

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

//go:embed templates/index.html.tmpl
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html.tmpl"))

type page struct {
	Language   string
	Title      string
	Greeting   string
	Background string
	Foreground string
}

var greetings = map[v1alpha1.Language]string{
	v1alpha1.LanguageEnglish: "This site is managed by the WebApp operator.",
	v1alpha1.LanguageSpanish: "Este sitio es gestionado por el operador WebApp.",
}

var palettes = map[v1alpha1.Theme][2]string{
	v1alpha1.ThemeDark:  {"#1e1e1e", "#f0f0f0"},
	v1alpha1.ThemeLight: {"#ffffff", "#202020"},
}

// renderIndex renders index.html for the instance and returns it with its
// sha256 hex digest.
func renderIndex(app *v1alpha1.WebApp) (string, string, error) {
	greeting, ok := greetings[app.Spec.Language]
	if !ok {
		greeting = greetings[v1alpha1.LanguageEnglish]
	}

	palette, ok := palettes[app.Spec.Theme]
	if !ok {
		palette = palettes[v1alpha1.ThemeLight]
	}

	var buf bytes.Buffer

	err := indexTemplate.Execute(&buf, page{
		Language:   string(app.Spec.Language),
		Title:      app.Name,
		Greeting:   greeting,
		Background: palette[0],
		Foreground: palette[1],
	})
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrRenderContent, err)
	}

	sum := sha256.Sum256(buf.Bytes())

	return buf.String(), hex.EncodeToString(sum[:]), nil
}
