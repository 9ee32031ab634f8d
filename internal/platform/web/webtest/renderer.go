// Package webtest graba las vistas renderizadas para que los tests de handlers
// puedan afirmar nombre de vista y atributos del modelo.
package webtest

import (
	"io"
	"net/http"
	"sync"

	"petclinic/internal/platform/web"
)

type Rendered struct {
	Status int
	Name   string
	Model  web.Model
}

type Renderer struct {
	mu    sync.Mutex
	views []Rendered
}

func (r *Renderer) Render(w http.ResponseWriter, status int, name string, model web.Model) error {
	r.mu.Lock()
	r.views = append(r.views, Rendered{Status: status, Name: name, Model: model})
	r.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, name)
	return err
}

// Last devuelve la última vista renderizada.
func (r *Renderer) Last() (Rendered, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return Rendered{}, false
	}
	return r.views[len(r.views)-1], true
}

func (r *Renderer) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}
