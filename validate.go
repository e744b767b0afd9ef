package intasend

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	msisdnPattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

type enum interface {
	Valid() bool
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.NullDecimal); ok && d.Valid {
				return d.Decimal.String()
			}
			return ""
		}, decimal.NullDecimal{})

		_ = v.RegisterValidation("intasend_enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(enum)
			return ok && e.Valid()
		})
		_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && d.IsPositive()
		})
		_ = v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
			return msisdnPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks a request payload against its struct tags. A nil pointer
// is rejected; non-struct values pass through untouched.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: nil %s", ErrInvalidRequest, rv.Type().Elem().Name())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "amount":
		return field + " must be greater than zero"
	case "msisdn":
		return field + " must be a phone number of 10 to 15 digits"
	case "intasend_enum":
		return fmt.Sprintf("%s has unsupported value %q", field, fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
