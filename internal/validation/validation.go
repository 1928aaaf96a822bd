package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// EmailTag is the struct tag used for the basic local@domain.tld email check
const EmailTag = "feedback_email"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether s looks like local@domain.tld
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func validateEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// Register adds the custom validation tags to v
func Register(v *validator.Validate) error {
	return v.RegisterValidation(EmailTag, validateEmail)
}

// RegisterWithGin adds the custom validation tags to gin's default validator
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}
