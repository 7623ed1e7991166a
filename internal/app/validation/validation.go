// Package validation is the single request-validation layer. It plugs custom rules into the
// go-playground validator that gin uses for `binding` tags and turns bind failures into
// apperr.Invalid results.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"gamerental/internal/app/apperr"
	"gamerental/internal/app/ds"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register installs the custom rules into gin's validator engine. Safe to call many times.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		rules := map[string]validator.Func{
			"birthdate":     validBirthDate,
			"orderstatus":   oneOf(ds.OrderAwaitingPayment, ds.OrderPaymentApproved, ds.OrderCanceled),
			"licensestatus": oneOf(ds.LicenseAvailable, ds.LicenseRented),
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("register %s rule: %w", tag, err)
				return
			}
		}
	})
	return registerErr
}

func validBirthDate(fl validator.FieldLevel) bool {
	_, err := ParseBirthDate(fl.Field().String(), time.Now())
	return err == nil
}

// oneOf matches whole values, so statuses with spaces need no quoting in tags.
func oneOf(values ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// FromBindError converts an error from gin's ShouldBind* into an apperr.Invalid.
func FromBindError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		message := "invalid data"
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
			if fe.Tag() == "birthdate" {
				if s, ok := fe.Value().(string); ok {
					if _, perr := ParseBirthDate(s, time.Now()); perr != nil {
						if ae, ok := apperr.From(perr); ok {
							message = ae.Message
						}
					}
				}
			}
		}
		return apperr.InvalidFields(message, fields)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return apperr.Invalid("malformed JSON body")
	case errors.As(err, &typeErr):
		return apperr.InvalidFields("invalid data", map[string]string{typeErr.Field: "type"})
	}

	return apperr.Invalid("invalid data: %s", err.Error())
}
