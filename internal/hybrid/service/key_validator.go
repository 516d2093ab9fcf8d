package service

import (
	"fmt"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

type keyValidator struct{}

// NewKeyValidator creates the validator shared by user-entered, generated and unwrapped keys.
func NewKeyValidator() KeyValidator {
	return &keyValidator{}
}

// Validate accepts a key that is square, has a dimension in [MinDimension, MaxDimension],
// holds residues in [0, Modulus) and whose determinant is coprime with Modulus.
// For Modulus 26 this rejects even determinants and multiples of 13.
func (v *keyValidator) Validate(key domain.KeyMatrix) error {
	n := len(key)
	if n < domain.MinDimension || n > domain.MaxDimension {
		return fmt.Errorf(
			"%w: dimension %d is outside [%d, %d]",
			domain.ErrInvalidKey,
			n,
			domain.MinDimension,
			domain.MaxDimension,
		)
	}

	for i, row := range key {
		if len(row) != n {
			return fmt.Errorf("%w: matrix is not square (row %d has %d entries)", domain.ErrInvalidKey, i+1, len(row))
		}
		for _, entry := range row {
			if entry < 0 || entry >= domain.Modulus {
				return fmt.Errorf("%w: entry %d is outside [0, %d)", domain.ErrInvalidKey, entry, domain.Modulus)
			}
		}
	}

	det := Determinant(key, domain.Modulus)
	if gcd(det, domain.Modulus) != 1 {
		return fmt.Errorf(
			"%w: determinant %d is not invertible mod %d",
			domain.ErrInvalidKey,
			det,
			domain.Modulus,
		)
	}
	return nil
}
