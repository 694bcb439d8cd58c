package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/g-inventory/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores usan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("bcryptlen", validateBcryptLen)
	return v
}

// bcryptMaxBytes límite de entrada de bcrypt, en bytes (no runas).
const bcryptMaxBytes = 72

// bcryptlen: la cadena cabe en bcrypt.
func validateBcryptLen(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= bcryptMaxBytes
}

// money: decimal no negativo, NUMERIC(10,2).
func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if d.IsNegative() || !d.Equal(d.Round(2)) {
		return false
	}
	return d.LessThan(decimal.New(1, 8))
}

// Struct valida s según sus tags `validate` y devuelve *domain.ValidationError.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &domain.ValidationError{Fields: map[string]string{"_": err.Error()}}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &domain.ValidationError{Fields: fields}
}
