package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"webshop/internal/models"
)

// validationError carries per-field messages keyed by JSON path.
type validationError struct {
	fields map[string]string
}

func (e *validationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for k, v := range e.fields {
		parts = append(parts, k+": "+v)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *validationError) add(field, msg string) {
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	e.fields[field] = msg
}

// orNil returns e when it holds at least one field error.
func (e *validationError) orNil() error {
	if len(e.fields) == 0 {
		return nil
	}
	return e
}

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

// check runs struct validation and converts the result to a validationError.
func (a *API) check(v any) error {
	err := a.validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &validationError{}
	for _, fe := range fieldErrs {
		ve.add(fieldPath(fe.Namespace()), fieldMessage(fe))
	}
	return ve
}

// fieldPath drops the root struct name: "BasketInput.items[0].productId"
// becomes "items[0].productId".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// checkProductPatch validates the keys present in a product patch. Name,
// stock and price are non-nullable columns.
func checkProductPatch(p models.ProductPatch) error {
	ve := &validationError{}
	if p.Name.IsNull() {
		ve.add("name", "must not be null")
	} else if p.Name.Present() && *p.Name.Value == "" {
		ve.add("name", "must not be empty")
	}
	if p.Stock.IsNull() {
		ve.add("stock", "must not be null")
	} else if p.Stock.Present() && *p.Stock.Value < 0 {
		ve.add("stock", "must be at least 0")
	}
	if p.Price.IsNull() {
		ve.add("price", "must not be null")
	} else if p.Price.Present() && *p.Price.Value < 0 {
		ve.add("price", "must be at least 0")
	}
	return ve.orNil()
}

func checkCategoryPatch(p models.CategoryPatch) error {
	ve := &validationError{}
	if p.Name.IsNull() {
		ve.add("name", "must not be null")
	} else if p.Name.Present() && *p.Name.Value == "" {
		ve.add("name", "must not be empty")
	}
	return ve.orNil()
}
