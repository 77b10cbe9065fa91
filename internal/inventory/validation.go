package inventory

import (
	"errors"
	"unicode"

	"shoestock/internal/models"

	"github.com/go-playground/validator/v10"
)

const codeLength = 8

var validate = validator.New()

func init() {
	// shoecode applies CheckCode to a string field.
	if err := validate.RegisterValidation("shoecode", func(fl validator.FieldLevel) bool {
		return ValidCode(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// CheckCode checks a code has the 'ABC12345' shape. The rule is deliberately
// loose: it rejects a digit among the first three characters or a letter
// among the last five, so codes made of punctuation pass.
func CheckCode(code string) error {
	runes := []rune(code)
	if len(runes) != codeLength {
		return ErrCodeLength
	}

	digitInPrefix := false
	for _, r := range runes[:3] {
		if unicode.IsDigit(r) {
			digitInPrefix = true
			break
		}
	}
	letterInSuffix := false
	for _, r := range runes[3:] {
		if unicode.IsLetter(r) {
			letterInSuffix = true
			break
		}
	}

	if !digitInPrefix && !letterInSuffix {
		return nil
	}
	return ErrCodeShape
}

func ValidCode(code string) bool {
	return CheckCode(code) == nil
}

// FindByCode returns the index of the first code equal to target, or -1.
func FindByCode(target string, codes []string) int {
	for i, code := range codes {
		if code == target {
			return i
		}
	}
	return -1
}

// Validate runs the struct tags of models.Shoe.
func Validate(shoe models.Shoe) error {
	err := validate.Struct(shoe)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string)
	for _, fe := range verrs {
		switch fe.Tag() {
		case "shoecode":
			fields[fe.Field()] = CheckCode(shoe.Code).Error()
		case "gte":
			fields[fe.Field()] = "must not be negative"
		default:
			fields[fe.Field()] = fe.Tag()
		}
	}
	return &ValidationError{Fields: fields}
}

// ValidateAmount checks a single cost or quantity value.
func ValidateAmount(n int) error {
	return validate.Var(n, "gte=0")
}
