package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator возвращает валидатор, который называет поля по их json-тегам.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	fields := make([]e.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, e.FieldError{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return e.NewValidationError(fields...)
}

// fieldPath отрезает имя корневой структуры: "saleRequest.productId" -> "productId".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
