// app/echoServer/view/view.go
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every template receives, embedded by per-page structs.
type Page struct {
	Title    string
	Root     string // URL prefix for links
	Email    string
	Role     string
	Active   string // sidebar highlight
	Business string // selected business id, if any
	Error    string
	Notice   string
}

type Renderer struct {
	t *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"str":   Str,
		"money": Money,
		"date":  Date,
	}
}

// Str renders a nullable wire string, with "-" for absent values.
func Str(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func Money(v float64) string { return fmt.Sprintf("%.2f", v) }

// Date formats backend RFC3339 timestamps the way the console always has:
// DD-MM-YY h:mmam/pm. Unparseable input is shown raw rather than hidden.
func Date(raw string) string {
	if raw == "" {
		return "-"
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("02-01-06 3:04pm")
}
