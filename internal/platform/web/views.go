package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"petclinic/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Views reúne lo que necesita un handler para responder: vistas, redirects con flash y errores.
type Views struct {
	Renderer Renderer
	Flash    *Flasher
	Log      logger.Logger
}

func (v *Views) Render(w http.ResponseWriter, r *http.Request, name string, model Model) {
	v.RenderStatus(w, r, http.StatusOK, name, model)
}

func (v *Views) RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, model Model) {
	if model == nil {
		model = Model{}
	}
	if fl, ok := FlashFrom(r.Context()); ok {
		if _, set := model["message"]; !set && fl.Message != "" {
			model["message"] = fl.Message
		}
		if _, set := model["error"]; !set && fl.Error != "" {
			model["error"] = fl.Error
		}
	}

	if err := v.Renderer.Render(w, status, name, model); err != nil {
		v.Logger(r).Error("render failed", map[string]any{"view": name, "err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Redirect responde 302; si fl trae algo se muestra en la próxima página.
func (v *Views) Redirect(w http.ResponseWriter, r *http.Request, url string, fl Flash) {
	if !fl.Empty() && v.Flash != nil {
		if err := v.Flash.Set(w, r, fl); err != nil {
			v.Logger(r).Warn("flash set failed", map[string]any{"err": err})
		}
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func (v *Views) NotFound(w http.ResponseWriter, r *http.Request, detail string) {
	v.RenderStatus(w, r, http.StatusNotFound, "error", Model{
		"status": http.StatusNotFound,
		"title":  "Not Found",
		"detail": detail,
	})
}

func (v *Views) Fail(w http.ResponseWriter, r *http.Request, err error) {
	v.Logger(r).Error("request failed", map[string]any{"path": r.URL.Path, "err": err})
	v.RenderStatus(w, r, http.StatusInternalServerError, "error", Model{
		"status": http.StatusInternalServerError,
		"title":  "Internal Server Error",
		"detail": "Something happened...",
	})
}

// Logger devuelve el logger con el request id del request.
func (v *Views) Logger(r *http.Request) logger.Logger {
	l := v.Log
	if l == nil {
		l = logger.Nop()
	}
	if id := chimw.GetReqID(r.Context()); id != "" {
		return l.With(map[string]any{"request_id": id})
	}
	return l
}

// WriteJSON responde JSON con el status indicado.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// PathInt lee un parámetro numérico de la ruta.
func PathInt(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
