package owners

import (
	"fmt"
	"net/http"
	"strings"

	"petclinic/internal/platform/web"

	"github.com/jinzhu/copier"
)

func initNewVisitFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		p, ok := loadPet(w, r, v, &o)
		if !ok {
			return
		}

		v.Render(w, r, viewVisitForm, web.Model{
			"owner": o,
			"pet":   *p,
			"visit": Visit{Date: svc.Today()},
		})
	}
}

func processNewVisitFormHandler(svc *Service, v *web.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := loadOwner(w, r, svc, v)
		if !ok {
			return
		}
		p, ok := loadPet(w, r, v, &o)
		if !ok {
			return
		}

		var form visitForm
		res := web.Bind(r, &form)
		web.Validate(&form, res)

		var visit Visit
		if err := copier.Copy(&visit, &form); err != nil {
			v.Fail(w, r, err)
			return
		}
		visit.Description = strings.TrimSpace(visit.Description)
		if visit.Date.IsZero() {
			visit.Date = svc.Today()
		}

		if res.HasErrors() {
			v.Render(w, r, viewVisitForm, web.Model{
				"owner":  o,
				"pet":    *p,
				"visit":  visit,
				"errors": res,
			})
			return
		}

		o.AddVisit(p.ID, visit)
		if err := svc.Save(r.Context(), &o); err != nil {
			v.Fail(w, r, err)
			return
		}

		v.Redirect(w, r, fmt.Sprintf("/owners/%d", o.ID), web.Flash{Message: "Your visit has been booked"})
	}
}
