package user

import (
	"fmt"

	"type-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest is the validating counterpart to BuildUser: the
// builder itself accepts anything, callers that need guarantees check
// the input here first.
type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,max=32"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRegistration, err)
	}
	return nil
}
