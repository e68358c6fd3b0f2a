package dto

import "github.com/go-playground/validator/v10"

// Instancia única del validador para todos los DTOs (las instancias cachean metadata).
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate valida un DTO según sus tags `validate`.
func Validate(s any) error {
	return validate.Struct(s)
}
