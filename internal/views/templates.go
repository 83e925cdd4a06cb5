package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses every embedded page and partial. Pages are named after
// their file ("riders", "driver", ...) and pull in "header" and "footer".
func Templates() (*template.Template, error) {
	return template.New("views").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}
