package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"
)

//go:embed templates
var templatesFS embed.FS

// Model son los atributos que recibe una vista.
type Model map[string]any

// Renderer pinta una vista por nombre ("owners/ownerDetails").
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, model Model) error
}

// TemplateRenderer usa las plantillas embebidas: cada página se combina con layout.html.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	pages := make(map[string]*template.Template)

	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".html") || path.Base(p) == "layout.html" {
			return nil
		}

		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html", p)
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}

		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/"), ".html")
		pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{pages: pages}, nil
}

func (t *TemplateRenderer) Render(w http.ResponseWriter, status int, name string, model Model) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}

	// Se renderiza a buffer para poder responder 500 si la plantilla falla.
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", model); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

var templateFuncs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)
	},
	"fieldError": func(b *BindingResult, field string) string {
		return b.Message(field)
	},
	"pages": func(total int) []int {
		out := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			out = append(out, i)
		}
		return out
	},
	"add": func(a, b int) int { return a + b },
}
