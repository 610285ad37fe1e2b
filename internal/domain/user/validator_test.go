package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordValidator_ValidateName(t *testing.T) {
	validator := NewPasswordValidator()

	tests := []struct {
		name        string
		input       string
		wantErr     bool
		expectedErr string
	}{
		{
			name:    "valid name",
			input:   "John Doe",
			wantErr: false,
		},
		{
			name:    "unicode name",
			input:   "Иван Петров",
			wantErr: false,
		},
		{
			name:        "blank",
			input:       "   ",
			wantErr:     true,
			expectedErr: "The name field is required.",
		},
		{
			name:        "too long",
			input:       strings.Repeat("a", 256),
			wantErr:     true,
			expectedErr: "must not be greater than 255 characters",
		},
		{
			name:        "control char",
			input:       "John\x00",
			wantErr:     true,
			expectedErr: "control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPasswordValidator_ValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		validator   *PasswordValidator
		password    string
		wantErr     bool
		expectedErr string
	}{
		{
			name:      "default accepts lower and digit",
			validator: NewPasswordValidator(),
			password:  "secret123",
			wantErr:   false,
		},
		{
			name:        "too short",
			validator:   NewPasswordValidator(),
			password:    "abc123",
			wantErr:     true,
			expectedErr: "at least 8 characters",
		},
		{
			name:        "too long",
			validator:   NewPasswordValidator(),
			password:    strings.Repeat("a1", 40),
			wantErr:     true,
			expectedErr: "not be greater than 72",
		},
		{
			name:        "no digit",
			validator:   NewPasswordValidator(),
			password:    "abcdefgh",
			wantErr:     true,
			expectedErr: "at least one number",
		},
		{
			name:        "no lowercase",
			validator:   NewPasswordValidator(),
			password:    "ABCDEF12",
			wantErr:     true,
			expectedErr: "at least one lowercase letter",
		},
		{
			name:        "strict: no uppercase",
			validator:   NewStrictPasswordValidator(),
			password:    "abc123!@",
			wantErr:     true,
			expectedErr: "at least one uppercase letter",
		},
		{
			name:        "strict: no special char",
			validator:   NewStrictPasswordValidator(),
			password:    "Abcdef12",
			wantErr:     true,
			expectedErr: "at least one symbol",
		},
		{
			name:      "strict: strong",
			validator: NewStrictPasswordValidator(),
			password:  "P@ssw0rd123!",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator.ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewPasswordValidator(t *testing.T) {
	v := NewPasswordValidator()
	assert.False(t, v.requireSpecialChar)
	assert.True(t, v.requireDigit)
	assert.False(t, v.requireUpper)
	assert.True(t, v.requireLower)
}
