package validation

import (
	"math/big"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"
)

// KeyMatrixText validates the lexical shape of a key matrix: decimal integers
// separated by whitespace, one row per line. Structural checks (square shape,
// invertibility) belong to the key validator.
var KeyMatrixText = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_key_matrix_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return validation.NewError(
				"validation_key_matrix",
				"must contain only non-negative integers separated by whitespace",
			)
		}
	}
	return nil
})

// ExponentModulusPair validates an RSA key in "<exponent>,<modulus>" decimal form.
var ExponentModulusPair = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_key_pair_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return validation.NewError("validation_key_pair_format", "must have the form <exponent>,<modulus>")
	}
	for _, part := range parts {
		n, ok := new(big.Int).SetString(strings.TrimSpace(part), 10)
		if !ok || n.Sign() <= 0 {
			return validation.NewError("validation_key_pair_value", "exponent and modulus must be positive integers")
		}
	}
	return nil
})
