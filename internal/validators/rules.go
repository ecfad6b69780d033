package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagDisplayName    = "display_name"
	TagStrongPassword = "strong_password"

	displayNameMin = 20
	displayNameMax = 60
	passwordMin    = 8
	passwordMax    = 16
	passwordSymbol = "!@#$%^&*"
)

var displayNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// IsDisplayName accepts 20 to 60 letters, digits and spaces.
func IsDisplayName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < displayNameMin || n > displayNameMax {
		return false
	}
	return displayNamePattern.MatchString(s)
}

// IsStrongPassword accepts 8 to 16 characters with at least one uppercase
// letter and one of !@#$%^&*.
func IsStrongPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < passwordMin || n > passwordMax {
		return false
	}
	hasUpper := strings.IndexFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' }) >= 0
	return hasUpper && strings.ContainsAny(s, passwordSymbol)
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagDisplayName, func(fl validator.FieldLevel) bool {
		return IsDisplayName(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagStrongPassword, func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
}

// RegisterWithGin installs the custom rules on gin's binding validator so
// `binding:"display_name"` and `binding:"strong_password"` tags work.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}
