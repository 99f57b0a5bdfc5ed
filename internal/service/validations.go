package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/myfit/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("split_sequence", func(fl validator.FieldLevel) bool {
			return ValidSplit(fl.Field().String())
		})
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, _, ok := parseHHMM(fl.Field().String())
			return ok
		})
	})
}

// ValidSplit reports whether s is 1 to 4 unique letters from A-D.
func ValidSplit(s string) bool {
	if len(s) < 1 || len(s) > 4 {
		return false
	}
	seen := make(map[rune]bool, len(s))
	for _, r := range s {
		if r < 'A' || r > 'D' || seen[r] {
			return false
		}
		seen[r] = true
	}
	return true
}

func parseHHMM(s string) (int, int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, false
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if validationError, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationError {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
