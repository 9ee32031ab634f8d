package owners

import "time"

// Formularios HTML. Los nombres `schema` son los del formulario; `validate` son las reglas.

type ownerForm struct {
	ID        int    `schema:"id"`
	FirstName string `schema:"firstName" validate:"notblank"`
	LastName  string `schema:"lastName" validate:"notblank"`
	Address   string `schema:"address" validate:"notblank"`
	City      string `schema:"city" validate:"notblank"`
	Telephone string `schema:"telephone" validate:"notblank,telephone"`
}

type findOwnersForm struct {
	LastName string `schema:"lastName"`
	Page     string `schema:"page"`
}

// petForm: `type` trae el nombre del tipo (o su id); `type.id` se lee aparte.
type petForm struct {
	ID        int       `schema:"id"`
	Name      string    `schema:"name"`
	BirthDate time.Time `schema:"birthDate"`
	TypeRef   string    `schema:"type"`
}

type visitForm struct {
	Date        time.Time `schema:"date"`
	Description string    `schema:"description" validate:"notblank"`
}
