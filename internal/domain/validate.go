package domain

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-petr/client-bank/pkg/formatpkg"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput indicates that the model violates a field constraint.
var ErrInvalidInput = errors.New("invalid input")

var validate = NewValidator()

// NewValidator returns a validator that understands decimal fields and the
// domain enums.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterValidations(v)

	return v
}

// RegisterValidations adds the domain specific rules to v.
func RegisterValidations(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("digits", validDigits)
	_ = v.RegisterValidation("business_type", validBusinessType)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}

	return nil
}

var validDigits validator.Func = func(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return formatpkg.IsDigits(s, len(s))
}

var validBusinessType validator.Func = func(fl validator.FieldLevel) bool {
	_, err := ParseBusinessType(fl.Field().String())
	return err == nil
}

func validateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
