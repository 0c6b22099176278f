package handlers

import (
	"errors"
	"reflect"
	"strings"

	"monauxiliaire/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// bindingDetails turns a gin binding failure into the per-field detail list
// rendered under `details`. Fields are reported under their JSON names, not
// the Go struct names the validator sees. A non-validator error (malformed
// JSON, wrong types) yields no details; the envelope message stands alone.
func bindingDetails(payload any, err error) []usecase.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	t := reflect.TypeOf(payload)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	details := make([]usecase.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
				field = name
			}
		}
		details = append(details, usecase.FieldError{Field: field, Message: "champ requis"})
	}
	return details
}
