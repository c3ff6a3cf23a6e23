package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRUT(t *testing.T) {
	tests := []struct {
		name string
		rut  string
		want bool
	}{
		{name: "empty is allowed", rut: "", want: true},
		{name: "valid with dash", rut: "12345678-5", want: true},
		{name: "wrong check digit", rut: "12345678-9", want: false},
		{name: "too short after stripping", rut: "abc", want: false},
		{name: "repeated ones", rut: "11111111-1", want: true},
		{name: "dotted format", rut: "12.345.678-5", want: true},
		{name: "check digit K upper", rut: "76.354.771-K", want: true},
		{name: "check digit k lower", rut: "76354771-k", want: true},
		{name: "check digit zero", rut: "0-0", want: true},
		{name: "single character", rut: "5", want: false},
		{name: "k inside body", rut: "1k345678-5", want: false},
		{name: "only separators", rut: "..--", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidRUT(tt.rut))
		})
	}
}

func TestIsValidRUT_Deterministic(t *testing.T) {
	inputs := []string{"12345678-5", "12345678-9", "76354771-K", "abc", ""}
	for _, in := range inputs {
		first := IsValidRUT(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, IsValidRUT(in), in)
		}
	}
}

func TestRUTCheckDigit(t *testing.T) {
	assert.Equal(t, "5", rutCheckDigit("12345678"))
	assert.Equal(t, "1", rutCheckDigit("11111111"))
	assert.Equal(t, "K", rutCheckDigit("6"))
	assert.Equal(t, "0", rutCheckDigit("0"))
}

func TestNormalizeRUT(t *testing.T) {
	got, ok := NormalizeRUT("76.354.771-k")
	assert.True(t, ok)
	assert.Equal(t, "76354771-K", got)

	_, ok = NormalizeRUT("12345678-9")
	assert.False(t, ok)

	_, ok = NormalizeRUT("")
	assert.False(t, ok)
}

func TestNewCredentials(t *testing.T) {
	c, err := NewCredentials("  Jefe@Pradera.CL ", "secreto123")
	assert.NoError(t, err)
	assert.Equal(t, "jefe@pradera.cl", c.Email())

	_, err = NewCredentials("not-an-email", "secreto123")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewCredentials("jefe@pradera.cl", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
