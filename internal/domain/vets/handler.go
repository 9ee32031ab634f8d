package vets

import (
	"net/http"

	"petclinic/internal/platform/paging"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const viewVetList = "vets/vetList"

func RegisterRoutes(r chi.Router, svc *Service, v *web.Views) {
	r.Get("/vets.html", showVetListHandler(svc, v))
	r.Get("/vets", showResourcesVetListHandler(svc, v))
}

// vetsResponse es el wrapper JSON de la lista de veterinarios.
type vetsResponse struct {
	VetList []vetResponse `json:"vetList"`
}

// vetResponse representa un veterinario con sus especialidades ordenadas por nombre.
type vetResponse struct {
	ID              int         `json:"id"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Specialties     []Specialty `json:"specialties"`
	NrOfSpecialties int         `json:"nrOfSpecialties"`
}

func showVetListHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := paging.ParsePage(r.URL.Query().Get("page"))

		p, err := svc.FindPage(r.Context(), page)
		if err != nil {
			v.Fail(w, r, err)
			return
		}

		v.Render(w, r, viewVetList, web.Model{
			"listVets":    p.Items,
			"currentPage": p.Number,
			"totalPages":  p.TotalPages(),
			"totalItems":  p.TotalItems,
		})
	}
}

// showResourcesVetListHandler godoc
// @Summary Listar veterinarios
// @Description Devuelve todos los veterinarios con sus especialidades. La lista se sirve desde cache cuando hay Redis configurado.
// @Tags vets
// @Produce json
// @Success 200 {object} vetsResponse
// @Failure 500 {string} string "internal error"
// @Router /vets [get]
func showResourcesVetListHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.FindAll(r.Context())
		if err != nil {
			v.Logger(r).Error("list vets failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		vets := NewVets(list)
		out := vetsResponse{VetList: make([]vetResponse, 0, len(vets.VetList()))}
		for _, vet := range vets.VetList() {
			out.VetList = append(out.VetList, toVetResponse(vet))
		}

		web.WriteJSON(w, http.StatusOK, out)
	}
}

func toVetResponse(v Vet) vetResponse {
	specs := v.Specialties
	if specs == nil {
		specs = []Specialty{}
	}
	return vetResponse{
		ID:              v.ID,
		FirstName:       v.FirstName,
		LastName:        v.LastName,
		Specialties:     specs,
		NrOfSpecialties: v.NrOfSpecialties(),
	}
}
