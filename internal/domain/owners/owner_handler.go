package owners

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"petclinic/internal/platform/paging"
	"petclinic/internal/platform/web"

	"github.com/go-chi/chi/v5"
	"github.com/jinzhu/copier"
)

const (
	viewOwnerForm    = "owners/createOrUpdateOwnerForm"
	viewFindOwners   = "owners/findOwners"
	viewOwnersList   = "owners/ownersList"
	viewOwnerDetails = "owners/ownerDetails"
	viewPetForm      = "pets/createOrUpdatePetForm"
	viewVisitForm    = "pets/createOrUpdateVisitForm"
)

func RegisterRoutes(r chi.Router, svc *Service, v *web.Views) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", processFindFormHandler(svc, v))
		or.Get("/find", initFindFormHandler(v))
		or.Get("/new", initCreationFormHandler(v))
		or.Post("/new", processCreationFormHandler(svc, v))

		or.Route("/{ownerID}", func(o chi.Router) {
			o.Get("/", showOwnerHandler(svc, v))
			o.Get("/edit", initUpdateOwnerFormHandler(svc, v))
			o.Post("/edit", processUpdateOwnerFormHandler(svc, v))

			// Mascotas del owner
			o.Get("/pets/new", initPetCreationFormHandler(svc, v))
			o.Post("/pets/new", processPetCreationFormHandler(svc, v))
			o.Get("/pets/{petID}/edit", initPetUpdateFormHandler(svc, v))
			o.Post("/pets/{petID}/edit", processPetUpdateFormHandler(svc, v))

			// Visitas
			o.Get("/pets/{petID}/visits/new", initNewVisitFormHandler(svc, v))
			o.Post("/pets/{petID}/visits/new", processNewVisitFormHandler(svc, v))
		})
	})
}

func initCreationFormHandler(v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, r, viewOwnerForm, web.Model{"owner": Owner{}})
	}
}

func processCreationFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form ownerForm
		res := web.Bind(r, &form)
		web.Validate(&form, res)

		var o Owner
		if err := copier.Copy(&o, &form); err != nil {
			v.Fail(w, r, err)
			return
		}
		o.ID = 0

		if res.HasErrors() {
			v.Render(w, r, viewOwnerForm, web.Model{
				"owner":  o,
				"errors": res,
				"error":  "There was an error in creating the owner.",
			})
			return
		}

		if err := svc.Save(r.Context(), &o); err != nil {
			v.Fail(w, r, err)
			return
		}

		v.Redirect(w, r, fmt.Sprintf("/owners/%d", o.ID), web.Flash{Message: "New Owner Created"})
	}
}

func initFindFormHandler(v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v.Render(w, r, viewFindOwners, web.Model{"lastName": ""})
	}
}

// processFindFormHandler: sin resultados vuelve al buscador, con uno redirige a su ficha,
// con varios muestra la lista paginada.
func processFindFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form findOwnersForm
		res := web.BindQuery(r, &form)
		lastName := strings.TrimSpace(form.LastName)
		page := paging.ParsePage(form.Page)

		results, err := svc.FindOwners(r.Context(), lastName, page)
		if err != nil {
			v.Fail(w, r, err)
			return
		}

		if results.Empty() {
			res.Reject("lastName", "notFound", "not found")
			v.Render(w, r, viewFindOwners, web.Model{
				"lastName": lastName,
				"errors":   res,
			})
			return
		}

		if results.TotalItems == 1 {
			v.Redirect(w, r, fmt.Sprintf("/owners/%d", results.Items[0].ID), web.Flash{})
			return
		}

		v.Render(w, r, viewOwnersList, web.Model{
			"listOwners":  results.Items,
			"currentPage": results.Number,
			"totalPages":  results.TotalPages(),
			"totalItems":  results.TotalItems,
			"lastName":    lastName,
		})
	}
}

func showOwnerHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		v.Render(w, r, viewOwnerDetails, web.Model{"owner": o})
	}
}

func initUpdateOwnerFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		v.Render(w, r, viewOwnerForm, web.Model{"owner": o})
	}
}

func processUpdateOwnerFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		ownerID := o.ID

		var form ownerForm
		res := web.Bind(r, &form)
		web.Validate(&form, res)

		formID := form.ID
		form.ID = ownerID
		if err := copier.Copy(&o, &form); err != nil {
			v.Fail(w, r, err)
			return
		}

		if res.HasErrors() {
			v.Render(w, r, viewOwnerForm, web.Model{
				"owner":  o,
				"errors": res,
				"error":  "There was an error in updating the owner.",
			})
			return
		}

		if formID != 0 && formID != ownerID {
			v.Redirect(w, r, fmt.Sprintf("/owners/%d/edit", ownerID), web.Flash{
				Error: "The owner ID in the form does not match the URL.",
			})
			return
		}

		if err := svc.Save(r.Context(), &o); err != nil {
			v.Fail(w, r, err)
			return
		}

		v.Redirect(w, r, fmt.Sprintf("/owners/%d", ownerID), web.Flash{Message: "Owner Values Updated"})
	}
}

// loadOwner resuelve {ownerID}; si no existe ya respondió con la página de error.
func loadOwner(w http.ResponseWriter, r *http.Request, svc *Service, v *web.Views) (Owner, bool) {
	id, ok := web.PathInt(r, "ownerID")
	if !ok {
		v.NotFound(w, r, fmt.Sprintf("Invalid owner id: %q.", chi.URLParam(r, "ownerID")))
		return Owner{}, false
	}

	o, err := svc.FindOwner(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			v.NotFound(w, r, NotFoundMessage(id))
			return Owner{}, false
		}
		v.Fail(w, r, err)
		return Owner{}, false
	}
	return o, true
}
