// Package domain defines the hybrid Hill/RSA cipher domain models and errors.
package domain

const (
	// Alphabet is the ordered symbol set of the block cipher. Index i maps to Alphabet[i].
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Modulus is the size of Alphabet; all matrix arithmetic is reduced modulo it.
	Modulus = len(Alphabet)

	// MinDimension is the smallest accepted key matrix dimension.
	MinDimension = 2

	// MaxDimension bounds the key matrix dimension. The determinant is computed by
	// cofactor expansion, so the bound keeps validation cost predictable.
	MaxDimension = 8

	// DefaultFillSymbol pads the last block of a message.
	DefaultFillSymbol = 'X'
)
