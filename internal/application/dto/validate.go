package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate menjalankan validasi tag `validate` pada request DTO.
func Validate(v any) error {
	return validate.Struct(v)
}
