package domain

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// KeyMatrix is the symmetric key of the block cipher: an n x n matrix of residues mod Modulus.
//
// A KeyMatrix is never mutated after construction.
type KeyMatrix [][]int

// Dimension returns the number of rows, which equals the block size for a square matrix.
func (k KeyMatrix) Dimension() int {
	return len(k)
}

// Flatten returns the entries in row-major order.
func (k KeyMatrix) Flatten() []int {
	values := make([]int, 0, len(k)*len(k))
	for _, row := range k {
		values = append(values, row...)
	}
	return values
}

// String renders the matrix in its wire form: rows separated by newline,
// entries separated by a single space.
func (k KeyMatrix) String() string {
	rows := make([]string, len(k))
	for i, row := range k {
		entries := make([]string, len(row))
		for j, v := range row {
			entries[j] = strconv.Itoa(v)
		}
		rows[i] = strings.Join(entries, " ")
	}
	return strings.Join(rows, "\n")
}

// ParseKeyMatrix parses the wire form of a key matrix.
//
// Rows are separated by newlines and entries by whitespace. Entries must be
// non-negative integers and are reduced mod Modulus. A single row whose length
// is a perfect square of at least MinDimension^2 is read as a flattened
// row-major matrix ("2 3 1 4" is [[2,3],[1,4]]).
//
// Returns ErrMalformedInput for empty text, non-numeric entries or ragged rows.
// Shape and invertibility are not checked here; see the key validator.
func ParseKeyMatrix(text string) (KeyMatrix, error) {
	var matrix KeyMatrix
	for lineNumber, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		row := make([]int, len(fields))
		for j, field := range fields {
			v, ok := new(big.Int).SetString(field, 10)
			if !ok || v.Sign() < 0 {
				return nil, fmt.Errorf(
					"%w: entry %q on line %d is not a non-negative integer",
					ErrMalformedInput,
					field,
					lineNumber+1,
				)
			}
			row[j] = int(v.Mod(v, bigModulus).Int64())
		}

		if len(matrix) > 0 && len(row) != len(matrix[0]) {
			return nil, fmt.Errorf(
				"%w: row %d has %d entries, expected %d",
				ErrMalformedInput,
				len(matrix)+1,
				len(row),
				len(matrix[0]),
			)
		}
		matrix = append(matrix, row)
	}

	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: key matrix is empty", ErrMalformedInput)
	}

	if len(matrix) == 1 {
		if flat, err := KeyMatrixFromValues(matrix[0]); err == nil {
			return flat, nil
		}
	}

	return matrix, nil
}

var bigModulus = big.NewInt(int64(Modulus))

// KeyDimension returns n when count entries form an n x n key with n in
// [MinDimension, MaxDimension]. Any other count is ErrInvalidKey.
func KeyDimension(count int) (int, error) {
	n := isqrt(count)
	if n*n != count || n < MinDimension || n > MaxDimension {
		return 0, fmt.Errorf(
			"%w: %d values do not form a square matrix of dimension %d to %d",
			ErrInvalidKey,
			count,
			MinDimension,
			MaxDimension,
		)
	}
	return n, nil
}

// KeyMatrixFromValues reshapes row-major values into a square matrix.
//
// Returns ErrInvalidKey when the number of values is not a perfect square of
// at least MinDimension^2, or when a value is outside [0, Modulus).
// The MaxDimension bound is left to the key validator.
func KeyMatrixFromValues(values []int) (KeyMatrix, error) {
	n := isqrt(len(values))
	if n < MinDimension || n*n != len(values) {
		return nil, fmt.Errorf("%w: %d values do not form a square matrix", ErrInvalidKey, len(values))
	}

	matrix := make(KeyMatrix, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
		for j := range matrix[i] {
			v := values[i*n+j]
			if v < 0 || v >= Modulus {
				return nil, fmt.Errorf("%w: entry %d is outside [0, %d)", ErrInvalidKey, v, Modulus)
			}
			matrix[i][j] = v
		}
	}
	return matrix, nil
}

func isqrt(x int) int {
	n := int(math.Sqrt(float64(x)))
	for n*n > x {
		n--
	}
	for (n+1)*(n+1) <= x {
		n++
	}
	return n
}
