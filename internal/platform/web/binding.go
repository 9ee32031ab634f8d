package web

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// DateLayout es el formato de las fechas en formularios (input type=date).
const DateLayout = "2006-01-02"

var (
	decoder  = newDecoder()
	validate = newValidator()

	telephoneRe = regexp.MustCompile(`^\d{10}$`)
)

// FieldError es un error de validación asociado a un campo del formulario.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// BindingResult junta los errores de binding y validación de un formulario.
// Los métodos aceptan receptor nil para que las plantillas no tengan que chequear.
type BindingResult struct {
	fields []FieldError
}

func NewBindingResult() *BindingResult { return &BindingResult{} }

func (b *BindingResult) Reject(field, code, message string) {
	b.fields = append(b.fields, FieldError{Field: field, Code: code, Message: message})
}

func (b *BindingResult) HasErrors() bool {
	return b != nil && len(b.fields) > 0
}

func (b *BindingResult) HasFieldErrors(field string) bool {
	return b.FieldError(field) != nil
}

func (b *BindingResult) FieldError(field string) *FieldError {
	if b == nil {
		return nil
	}
	for i := range b.fields {
		if b.fields[i].Field == field {
			return &b.fields[i]
		}
	}
	return nil
}

// Message devuelve el primer mensaje del campo, o "".
func (b *BindingResult) Message(field string) string {
	if fe := b.FieldError(field); fe != nil {
		return fe.Message
	}
	return ""
}

func (b *BindingResult) Errors() []FieldError {
	if b == nil {
		return nil
	}
	return append([]FieldError(nil), b.fields...)
}

// Bind decodifica el formulario del request en dst (struct con tags `schema`)
// y registra como typeMismatch los campos que no se pudieron convertir.
func Bind(r *http.Request, dst any) *BindingResult {
	res := NewBindingResult()

	if err := r.ParseForm(); err != nil {
		res.Reject("", "parse", "invalid form")
		return res
	}

	if err := decoder.Decode(dst, r.PostForm); err != nil {
		rejectDecodeErrors(res, err)
	}
	return res
}

// BindQuery es Bind pero sobre la query string (formularios GET).
func BindQuery(r *http.Request, dst any) *BindingResult {
	res := NewBindingResult()
	if err := decoder.Decode(dst, r.URL.Query()); err != nil {
		rejectDecodeErrors(res, err)
	}
	return res
}

// Validate aplica las reglas `validate` de dst y las suma a res.
func Validate(dst any, res *BindingResult) {
	err := validate.Struct(dst)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Reject("", "invalid", err.Error())
		return
	}
	for _, fe := range verrs {
		code, msg := describe(fe)
		res.Reject(fe.Field(), code, msg)
	}
}

func rejectDecodeErrors(res *BindingResult, err error) {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		res.Reject("", "invalid", err.Error())
		return
	}
	for key, e := range multi {
		var conv schema.ConversionError
		if errors.As(e, &conv) {
			res.Reject(key, "typeMismatch", fmt.Sprintf("invalid value for %s", key))
			continue
		}
		res.Reject(key, "invalid", e.Error())
	}
}

func describe(fe validator.FieldError) (code, message string) {
	switch fe.Tag() {
	case "required", "notblank":
		return "required", "must not be blank"
	case "telephone":
		return "pattern", "Telephone must be a 10-digit number"
	default:
		return fe.Tag(), "invalid value"
	}
}

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	d.RegisterConverter(time.Time{}, func(s string) reflect.Value {
		s = strings.TrimSpace(s)
		if s == "" {
			return reflect.ValueOf(time.Time{})
		}
		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})
	return d
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Los errores se reportan con el nombre del campo del formulario.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("schema"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("telephone", func(fl validator.FieldLevel) bool {
		return telephoneRe.MatchString(fl.Field().String())
	})
	return v
}
