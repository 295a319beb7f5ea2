package intent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmptyTable  = errors.New("intent table is empty")
	ErrDuplicateID = errors.New("duplicate intent id")

	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("token", func(fl validator.FieldLevel) bool {
			return IsToken(fl.Field().String())
		})
	})
	return validate
}

// Validate checks the table invariants: unique ids, at least one
// keyword and one reply per intent, and normalized keyword and synonym
// tokens without repeats.
func Validate(t Table) error {
	if len(t) == 0 {
		return ErrEmptyTable
	}

	v := structValidator()
	seen := make(map[string]struct{}, len(t))
	for i, in := range t {
		if err := v.Struct(in); err != nil {
			return fmt.Errorf("intent %d (%q): %w", i, in.ID, err)
		}
		if _, dup := seen[in.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, in.ID)
		}
		seen[in.ID] = struct{}{}
	}

	return nil
}

// ValidateLinks checks that every link is an absolute URL and the
// contact address is an e-mail.
func ValidateLinks(l Links) error {
	return structValidator().Struct(l)
}
