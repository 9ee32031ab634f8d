package owners

import (
	"fmt"
	"net/http"
	"strings"

	"petclinic/internal/platform/web"

	"github.com/jinzhu/copier"
)

func initPetCreationFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		renderPetForm(w, r, svc, v, o, Pet{}, nil)
	}
}

func processPetCreationFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}

		pet, res, err := bindPet(r, svc)
		if err != nil {
			v.Fail(w, r, err)
			return
		}
		pet.ID = 0

		name := strings.TrimSpace(pet.Name)
		if name != "" && o.Pet(name, true) != nil {
			res.Reject("name", "duplicate", "already exists")
		}
		if !res.HasFieldErrors("type") && pet.Type.ID == 0 {
			res.Reject("type", "required", "required")
		}
		checkBirthDate(svc, pet, res)

		if res.HasErrors() {
			renderPetForm(w, r, svc, v, o, pet, res)
			return
		}

		o.AddPet(pet)
		if err := svc.Save(r.Context(), &o); err != nil {
			v.Fail(w, r, err)
			return
		}

		v.Redirect(w, r, fmt.Sprintf("/owners/%d", o.ID), web.Flash{Message: "New Pet has been Added"})
	}
}

func initPetUpdateFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		p, ok := loadPet(w, r, v, &o)
		if !ok {
			return
		}
		renderPetForm(w, r, svc, v, o, *p, nil)
	}
}

func processPetUpdateFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		current, ok := loadPet(w, r, v, &o)
		if !ok {
			return
		}

		pet, res, err := bindPet(r, svc)
		if err != nil {
			v.Fail(w, r, err)
			return
		}
		pet.ID = current.ID
		pet.Visits = current.Visits
		if pet.Type.ID == 0 && !res.HasFieldErrors("type") {
			// sin tipo en el formulario se conserva el actual
			pet.Type = current.Type
		}

		if name := strings.TrimSpace(pet.Name); name != "" {
			if existing := o.Pet(name, false); existing != nil && existing.ID != pet.ID {
				res.Reject("name", "duplicate", "already exists")
			}
		}
		checkBirthDate(svc, pet, res)

		if res.HasErrors() {
			renderPetForm(w, r, svc, v, o, pet, res)
			return
		}

		current.Name = pet.Name
		current.BirthDate = pet.BirthDate
		current.Type = pet.Type

		if err := svc.Save(r.Context(), &o); err != nil {
			v.Fail(w, r, err)
			return
		}

		v.Redirect(w, r, fmt.Sprintf("/owners/%d", o.ID), web.Flash{Message: "Pet details has been edited"})
	}
}

// bindPet decodifica el formulario y resuelve el tipo por `type.id` o `type`.
func bindPet(r *http.Request, svc *Service) (Pet, *web.BindingResult, error) {
	var form petForm
	res := web.Bind(r, &form)

	var pet Pet
	if err := copier.Copy(&pet, &form); err != nil {
		return Pet{}, nil, err
	}
	pet.Name = strings.TrimSpace(pet.Name)

	if pet.Name == "" {
		res.Reject("name", "required", "required")
	}
	if pet.BirthDate.IsZero() && !res.HasFieldErrors("birthDate") {
		res.Reject("birthDate", "required", "required")
	}

	ref := form.TypeRef
	if id := strings.TrimSpace(r.PostForm.Get("type.id")); id != "" {
		ref = id
	}
	if strings.TrimSpace(ref) != "" {
		t, found, err := svc.ResolvePetType(r.Context(), ref)
		if err != nil {
			return Pet{}, nil, err
		}
		if !found {
			res.Reject("type", "typeMismatch", "invalid pet type")
		} else {
			pet.Type = t
		}
	}

	return pet, res, nil
}

func checkBirthDate(svc *Service, pet Pet, res *web.BindingResult) {
	if !pet.BirthDate.IsZero() && pet.BirthDate.After(svc.Today()) {
		res.Reject("birthDate", "typeMismatch.birthDate", "invalid date")
	}
}

func loadPet(w http.ResponseWriter, r *http.Request, v *web.Views, o *Owner) (*Pet, bool) {
	petID, ok := web.PathInt(r, "petID")
	if !ok {
		v.NotFound(w, r, "Invalid pet id.")
		return nil, false
	}
	p := o.PetByID(petID)
	if p == nil {
		v.NotFound(w, r, fmt.Sprintf("Pet with id %d not found for owner with id %d.", petID, o.ID))
		return nil, false
	}
	return p, true
}

func renderPetForm(w http.ResponseWriter, r *http.Request, svc *Service, v *web.Views, o Owner, p Pet, res *web.BindingResult) {
	types, err := svc.PetTypes(r.Context())
	if err != nil {
		v.Fail(w, r, err)
		return
	}
	v.Render(w, r, viewPetForm, web.Model{
		"owner":  o,
		"pet":    p,
		"types":  types,
		"errors": res,
	})
}
