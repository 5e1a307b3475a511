package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	validator "github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"rbc/bestiary"
	"rbc/equipment"
)

var sourceValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report problems using names authors see in YAML
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// FieldError is a single out of bounds or missing authored value.
type FieldError struct {
	Path  string
	Rule  string
	Value any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: value %v does not satisfy %q", e.Path, e.Value, e.Rule)
}

// Validate checks authored values against their bounds and source integrity:
// every ability referenced by beasts is defined and every equipment category
// holds items of a single kind. Returned error combines all problems, use
// multierr.Errors to get them separately.
func Validate(src *Source) (err error) {
	if verr := sourceValidator().Struct(src); verr != nil {
		var fields validator.ValidationErrors
		if !errors.As(verr, &fields) {
			return verr
		}
		for _, fe := range fields {
			rule := fe.Tag()
			if len(fe.Param()) > 0 {
				rule += "=" + fe.Param()
			}
			// drop root type name, inline document fields are top level
			_, path, _ := strings.Cut(fe.Namespace(), ".")
			path = strings.TrimPrefix(path, "Document.")
			err = multierr.Append(err, &FieldError{Path: path, Rule: rule, Value: fe.Value()})
		}
	}
	err = multierr.Append(err, checkBestiary(src.Bestiary))
	err = multierr.Append(err, checkEquipment(src.Equipment))
	return err
}

func checkBestiary(ch *bestiary.Chapter) (err error) {
	if ch == nil {
		return nil
	}
	abilities := ch.AbilityTable()
	for _, b := range ch.Beasts() {
		for _, name := range b.Abilities {
			if _, rerr := abilities.Resolve(name); rerr != nil {
				err = multierr.Append(err, fmt.Errorf("beast %q: %w", b.Title, rerr))
			}
		}
	}
	return err
}

func checkEquipment(cat *equipment.Catalog) (err error) {
	if cat == nil {
		return nil
	}
	for i := range cat.Categories {
		if _, terr := cat.Categories[i].Table(); terr != nil {
			err = multierr.Append(err, terr)
		}
	}
	return err
}
