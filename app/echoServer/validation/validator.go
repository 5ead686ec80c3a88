package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidate returns a validator that reports fields by their JSON name.
func NewValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validator adapts validator.Validate to echo.Validator.
type Validator struct {
	v *validator.Validate
}

func New(v *validator.Validate) *Validator {
	if v == nil {
		v = NewValidate()
	}
	return &Validator{v: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
