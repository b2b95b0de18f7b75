package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance backing the field rules.
var validate = validator.New()

// fieldErrors accumulates validation messages for one input object.
// Rules append in call order, so the resulting list is deterministic.
type fieldErrors []string

// isEmail checks that value is a well-formed email address.
func (e *fieldErrors) isEmail(field, value string) {
	if err := validate.Var(value, "required,email"); err != nil {
		*e = append(*e, fmt.Sprintf("%s must be a valid email address", field))
	}
}

// minLength checks that value is at least n characters long.
func (e *fieldErrors) minLength(field, value string, n int) {
	if err := validate.Var(value, fmt.Sprintf("min=%d", n)); err != nil {
		*e = append(*e, fmt.Sprintf("%s must be at least %d characters long", field, n))
	}
}

// nonEmptyMinLength checks that value is non-empty and at least n
// characters long, reporting a single message for the field either way.
func (e *fieldErrors) nonEmptyMinLength(field, value string, n int) {
	if err := validate.Var(value, fmt.Sprintf("required,min=%d", n)); err != nil {
		*e = append(*e, fmt.Sprintf("%s must be non-empty and at least %d characters long", field, n))
	}
}

// err converts the accumulated messages into an *InvalidInputError, or nil
// when every rule passed.
func (e fieldErrors) err() error {
	return NewInvalidInputError(e)
}

// ValidateRegistration checks the registration input fields and returns an
// *InvalidInputError listing every failure, or nil when all rules pass.
func ValidateRegistration(email, password, name string) error {
	var errs fieldErrors
	errs.isEmail("email", email)
	errs.minLength("password", password, 5)
	errs.minLength("name", name, 5)
	return errs.err()
}

// ValidatePostInput checks the fields shared by post creation and update.
func ValidatePostInput(title, content, imageURL string) error {
	var errs fieldErrors
	errs.nonEmptyMinLength("title", title, 5)
	errs.nonEmptyMinLength("content", content, 5)
	errs.nonEmptyMinLength("imageUrl", imageURL, 5)
	return errs.err()
}

// ValidateStatus checks a user status update.
func ValidateStatus(status string) error {
	var errs fieldErrors
	errs.nonEmptyMinLength("status", status, 2)
	return errs.err()
}
