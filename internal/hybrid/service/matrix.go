package service

import (
	"fmt"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// mod reduces x into [0, m).
func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// Multiply returns a.b with every entry reduced mod m.
func Multiply(a, b domain.KeyMatrix, m int) (domain.KeyMatrix, error) {
	if len(a) == 0 || len(b) == 0 || len(a[0]) != len(b) {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d matrix",
			domain.ErrMalformedInput, len(a), columns(a), len(b), columns(b))
	}

	c := make(domain.KeyMatrix, len(a))
	for i := range a {
		c[i] = make([]int, len(b[0]))
		for j := range b[0] {
			sum := 0
			for k := range b {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = mod(sum, m)
		}
	}
	return c, nil
}

// MultiplyVector returns a.v for the column vector v, reduced mod m.
func MultiplyVector(a domain.KeyMatrix, v []int, m int) ([]int, error) {
	if len(a) == 0 || len(a[0]) != len(v) {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d matrix by vector of length %d",
			domain.ErrMalformedInput, len(a), columns(a), len(v))
	}

	out := make([]int, len(a))
	for i, row := range a {
		sum := 0
		for j, x := range row {
			sum += x * v[j]
		}
		out[i] = mod(sum, m)
	}
	return out, nil
}

// Determinant returns det(a) mod m, computed by cofactor expansion along the first
// row. Entries are reduced at every step so intermediate values stay small.
// a must be square.
func Determinant(a domain.KeyMatrix, m int) int {
	switch len(a) {
	case 0:
		return mod(1, m)
	case 1:
		return mod(a[0][0], m)
	case 2:
		return mod(a[0][0]*a[1][1]-a[0][1]*a[1][0], m)
	}

	det := 0
	for j := range a[0] {
		if a[0][j] == 0 {
			continue
		}
		term := a[0][j] * Determinant(minor(a, 0, j), m)
		if j%2 == 1 {
			term = -term
		}
		det = mod(det+term, m)
	}
	return det
}

// ModInverse returns x with a.x = 1 (mod m), using the extended Euclidean algorithm.
//
// Returns ErrNotInvertible when gcd(a, m) != 1.
func ModInverse(a, m int) (int, error) {
	oldR, r := mod(a, m), m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", domain.ErrNotInvertible, mod(a, m), m, oldR)
	}
	return mod(oldS, m), nil
}

// Inverse returns the inverse of a mod m as modInverse(det(a)) . adjugate(a).
//
// Returns ErrNotInvertible when the determinant has no inverse mod m.
func Inverse(a domain.KeyMatrix, m int) (domain.KeyMatrix, error) {
	detInverse, err := ModInverse(Determinant(a, m), m)
	if err != nil {
		return nil, err
	}

	n := len(a)
	inverse := make(domain.KeyMatrix, n)
	for i := range inverse {
		inverse[i] = make([]int, n)
	}

	if n == 1 {
		inverse[0][0] = detInverse
		return inverse, nil
	}

	// The adjugate is the transposed cofactor matrix, hence inverse[j][i].
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cofactor := Determinant(minor(a, i, j), m)
			if (i+j)%2 == 1 {
				cofactor = -cofactor
			}
			inverse[j][i] = mod(detInverse*cofactor, m)
		}
	}
	return inverse, nil
}

// minor returns a without row r and column c.
func minor(a domain.KeyMatrix, r, c int) domain.KeyMatrix {
	out := make(domain.KeyMatrix, 0, len(a)-1)
	for i, row := range a {
		if i == r {
			continue
		}
		reduced := make([]int, 0, len(row)-1)
		reduced = append(reduced, row[:c]...)
		reduced = append(reduced, row[c+1:]...)
		out = append(out, reduced)
	}
	return out
}

func columns(a domain.KeyMatrix) int {
	if len(a) == 0 {
		return 0
	}
	return len(a[0])
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
