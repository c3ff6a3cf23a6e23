package valueobject

import (
	"strconv"
	"strings"
)

// IsValidRUT checks the verification character of a Chilean RUT.
// An empty value is accepted since the field is optional. Dots, dashes and
// spaces are ignored.
func IsValidRUT(rut string) bool {
	if rut == "" {
		return true
	}

	clean := cleanRUT(rut)
	if len(clean) < 2 {
		return false
	}

	body := clean[:len(clean)-1]
	checkDigit := strings.ToUpper(clean[len(clean)-1:])
	if !isDigits(body) {
		return false
	}

	return checkDigit == rutCheckDigit(body)
}

// NormalizeRUT returns the canonical "12345678-5" form of a valid RUT.
// It returns false when rut is empty or invalid.
func NormalizeRUT(rut string) (string, bool) {
	if rut == "" || !IsValidRUT(rut) {
		return "", false
	}
	clean := strings.ToUpper(cleanRUT(rut))
	return clean[:len(clean)-1] + "-" + clean[len(clean)-1:], true
}

func cleanRUT(rut string) string {
	var b strings.Builder
	b.Grow(len(rut))
	for _, r := range rut {
		if (r >= '0' && r <= '9') || r == 'k' || r == 'K' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// rutCheckDigit applies the modulo 11 rule with weights 2..7 taken from the
// rightmost digit of body.
func rutCheckDigit(body string) string {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}

	switch expected := 11 - sum%11; expected {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(expected)
	}
}
