package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

const (
	// MinKeyPairBits and MaxKeyPairBits bound the modulus size of generated key pairs.
	MinKeyPairBits = 16
	MaxKeyPairBits = 4096
)

// DefaultPublicExponent is used when a key pair request omits e.
var DefaultPublicExponent = big.NewInt(65537)

type keyGenerator struct {
	validator   KeyValidator
	random      io.Reader
	maxAttempts int
}

// NewKeyGenerator creates a key generator reading randomness from crypto/rand.
// Matrix sampling gives up after maxAttempts candidates.
func NewKeyGenerator(validator KeyValidator, maxAttempts int) KeyGenerator {
	return newKeyGenerator(validator, rand.Reader, maxAttempts)
}

func newKeyGenerator(validator KeyValidator, random io.Reader, maxAttempts int) *keyGenerator {
	return &keyGenerator{validator: validator, random: random, maxAttempts: maxAttempts}
}

// GenerateKeyMatrix samples random matrices until one passes the KeyValidator.
//
// Returns ErrInvalidKey for a dimension outside [MinDimension, MaxDimension] and
// ErrKeyGenerationExhausted when no candidate is accepted within maxAttempts.
func (g *keyGenerator) GenerateKeyMatrix(dimension int) (domain.KeyMatrix, error) {
	if dimension < domain.MinDimension || dimension > domain.MaxDimension {
		return nil, fmt.Errorf(
			"%w: dimension %d is outside [%d, %d]",
			domain.ErrInvalidKey,
			dimension,
			domain.MinDimension,
			domain.MaxDimension,
		)
	}

	bound := big.NewInt(int64(domain.Modulus))
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := make(domain.KeyMatrix, dimension)
		for i := range candidate {
			candidate[i] = make([]int, dimension)
			for j := range candidate[i] {
				n, err := rand.Int(g.random, bound)
				if err != nil {
					return nil, fmt.Errorf("failed to generate random entry: %w", err)
				}
				candidate[i][j] = int(n.Int64())
			}
		}

		if g.validator.Validate(candidate) == nil {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: %d attempts", domain.ErrKeyGenerationExhausted, g.maxAttempts)
}

// DeriveKeyPair builds a key pair from primes p and q and public exponent e.
//
// The modulus is p.q and the private exponent is e^-1 mod lcm(p-1, q-1).
// p and q must be distinct primes, e must be coprime with the group order, and
// the modulus must exceed Modulus-1 so every key entry can be wrapped.
func (g *keyGenerator) DeriveKeyPair(p, q, e *big.Int) (*domain.KeyPair, error) {
	if p == nil || q == nil || e == nil {
		return nil, fmt.Errorf("%w: p, q and e are required", domain.ErrMalformedInput)
	}
	if !p.ProbablyPrime(20) || !q.ProbablyPrime(20) {
		return nil, fmt.Errorf("%w: p and q must be prime", domain.ErrMalformedInput)
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: p and q must be distinct", domain.ErrMalformedInput)
	}
	if e.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w: e must be greater than 1", domain.ErrMalformedInput)
	}

	m := new(big.Int).Mul(p, q)
	if m.Cmp(big.NewInt(int64(domain.Modulus-1))) <= 0 {
		return nil, fmt.Errorf("%w: modulus %s cannot wrap residues mod %d", domain.ErrMalformedInput, m, domain.Modulus)
	}

	d := new(big.Int).ModInverse(e, carmichael(p, q))
	if d == nil {
		return nil, fmt.Errorf("%w: e is not coprime with lcm(p-1, q-1)", domain.ErrMalformedInput)
	}

	return &domain.KeyPair{
		Public:  domain.PublicKey{Exponent: new(big.Int).Set(e), Modulus: m},
		Private: domain.PrivateKey{Exponent: d, Modulus: new(big.Int).Set(m)},
	}, nil
}

// GenerateKeyPair draws two random primes of bits/2 bits each and derives a key
// pair for exponent e (DefaultPublicExponent when nil). Draws are repeated while
// e is not coprime with the group order.
func (g *keyGenerator) GenerateKeyPair(bits int, e *big.Int) (*domain.KeyPair, error) {
	if bits < MinKeyPairBits || bits > MaxKeyPairBits {
		return nil, fmt.Errorf(
			"%w: bits %d is outside [%d, %d]",
			domain.ErrMalformedInput,
			bits,
			MinKeyPairBits,
			MaxKeyPairBits,
		)
	}
	if e == nil {
		e = DefaultPublicExponent
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		p, err := rand.Prime(g.random, bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		q, err := rand.Prime(g.random, bits-bits/2)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		if p.Cmp(q) == 0 {
			continue
		}

		pair, err := g.DeriveKeyPair(p, q, e)
		if err == nil {
			return pair, nil
		}
	}

	return nil, fmt.Errorf("%w: no key pair found for e=%s", domain.ErrKeyGenerationExhausted, e)
}

// carmichael returns lcm(p-1, q-1).
func carmichael(p, q *big.Int) *big.Int {
	one := big.NewInt(1)
	p1 := new(big.Int).Sub(p, one)
	q1 := new(big.Int).Sub(q, one)
	g := new(big.Int).GCD(nil, nil, p1, q1)
	return new(big.Int).Div(new(big.Int).Mul(p1, q1), g)
}
