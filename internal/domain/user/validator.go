package user

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MaxNameLen     = 255
	MinPasswordLen = 8
	MaxPasswordLen = 72 // предел bcrypt
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateName(name string) error
	ValidatePassword(password string) error
}

type PasswordValidator struct {
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

// NewPasswordValidator создает валидатор: пароль от 8 символов,
// хотя бы одна строчная буква и одна цифра.
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{
		requireDigit: true,
		requireLower: true,
	}
}

// NewStrictPasswordValidator дополнительно требует заглавную букву и спецсимвол.
func NewStrictPasswordValidator() *PasswordValidator {
	return &PasswordValidator{
		requireSpecialChar: true,
		requireDigit:       true,
		requireUpper:       true,
		requireLower:       true,
	}
}

// ValidateName валидирует отображаемое имя
func (v *PasswordValidator) ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("The name field is required.")
	}

	if len([]rune(name)) > MaxNameLen {
		return fmt.Errorf("The name field must not be greater than %d characters.", MaxNameLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("The name field must not contain control characters.")
		}
	}

	return nil
}

// ValidatePassword валидирует пароль
func (v *PasswordValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("The password field must be at least %d characters.", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("The password field must not be greater than %d characters.", MaxPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if v.requireLower && !hasLower {
		return fmt.Errorf("The password field must contain at least one lowercase letter.")
	}

	if v.requireUpper && !hasUpper {
		return fmt.Errorf("The password field must contain at least one uppercase letter.")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("The password field must contain at least one number.")
	}

	if v.requireSpecialChar && !hasSpecial {
		return fmt.Errorf("The password field must contain at least one symbol.")
	}

	return nil
}
