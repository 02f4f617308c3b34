package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("phone", phoneRule); err != nil {
		panic(err)
	}
}

// phoneRule allows digits, spaces and '+' only.
func phoneRule(fl validator.FieldLevel) bool {
	for _, ch := range fl.Field().String() {
		switch {
		case ch >= '0' && ch <= '9':
		case ch == ' ' || ch == '+':
		default:
			return false
		}
	}
	return true
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
