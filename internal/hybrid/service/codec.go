package service

import (
	"fmt"
	"strings"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

// SymbolToIndex maps an alphabet symbol to its residue.
func SymbolToIndex(symbol rune) (int, error) {
	if symbol < 'A' || symbol > 'Z' {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidCharacter, symbol)
	}
	return int(symbol - 'A'), nil
}

// IndexToSymbol maps a residue to its alphabet symbol.
func IndexToSymbol(index int) (rune, error) {
	if index < 0 || index >= domain.Modulus {
		return 0, fmt.Errorf("%w: index %d", domain.ErrInvalidCharacter, index)
	}
	return rune(domain.Alphabet[index]), nil
}

// Codec converts between text and residue sequences under a text policy.
type Codec struct {
	fill   int
	policy domain.TextPolicy
}

// NewCodec creates a codec padding with fill and applying policy to non-alphabet characters.
func NewCodec(fill rune, policy domain.TextPolicy) (*Codec, error) {
	fillIndex, err := SymbolToIndex(fill)
	if err != nil {
		return nil, fmt.Errorf("invalid fill symbol: %w", err)
	}
	if policy != domain.TextPolicyStrict && policy != domain.TextPolicyPassthrough {
		return nil, fmt.Errorf("unknown text policy %q", policy)
	}
	return &Codec{fill: fillIndex, policy: policy}, nil
}

// Normalize uppercases ASCII letters and applies the text policy.
//
// Under the strict policy every other character fails with ErrInvalidCharacter.
// Under the passthrough policy they are kept unchanged. Empty text fails with
// ErrMalformedInput. Normalize is idempotent.
func (c *Codec) Normalize(text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: message is empty", domain.ErrMalformedInput)
	}

	var b strings.Builder
	b.Grow(len(text))
	for position, r := range []rune(text) {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if c.policy == domain.TextPolicyStrict && !isSymbol(r) {
			return "", fmt.Errorf("%w: %q at position %d", domain.ErrInvalidCharacter, r, position)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Pad appends the fill symbol until the length is a multiple of blockSize.
func (c *Codec) Pad(symbols []int, blockSize int) []int {
	for len(symbols)%blockSize != 0 {
		symbols = append(symbols, c.fill)
	}
	return symbols
}

// layout is normalized text split into cipher residues and the positions they
// occupy. Characters outside the alphabet stay in runes and are never transformed.
type layout struct {
	runes     []rune
	positions []int
	indices   []int
}

// split decomposes normalized text into its layout.
func (c *Codec) split(normalized string) layout {
	l := layout{runes: []rune(normalized)}
	for position, r := range l.runes {
		if isSymbol(r) {
			l.positions = append(l.positions, position)
			l.indices = append(l.indices, int(r-'A'))
		}
	}
	return l
}

// render writes indices back into the layout. Residues beyond the original
// letter positions (padding) are appended at the end.
func (l layout) render(indices []int) (string, error) {
	out := append([]rune(nil), l.runes...)
	for i, index := range indices {
		symbol, err := IndexToSymbol(index)
		if err != nil {
			return "", err
		}
		if i < len(l.positions) {
			out[l.positions[i]] = symbol
			continue
		}
		out = append(out, symbol)
	}
	return string(out), nil
}

func isSymbol(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
