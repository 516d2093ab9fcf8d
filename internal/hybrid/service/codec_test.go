package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

func TestSymbolIndexBijection(t *testing.T) {
	for i := 0; i < domain.Modulus; i++ {
		symbol, err := IndexToSymbol(i)
		require.NoError(t, err)

		index, err := SymbolToIndex(symbol)
		require.NoError(t, err)
		assert.Equal(t, i, index)
	}

	_, err := SymbolToIndex('a')
	assert.ErrorIs(t, err, domain.ErrInvalidCharacter)

	_, err = IndexToSymbol(domain.Modulus)
	assert.ErrorIs(t, err, domain.ErrInvalidCharacter)

	_, err = IndexToSymbol(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidCharacter)
}

func TestNewCodec(t *testing.T) {
	t.Run("Success_Default", func(t *testing.T) {
		codec, err := NewCodec(domain.DefaultFillSymbol, domain.TextPolicyStrict)

		require.NoError(t, err)
		normalized, err := codec.Normalize("hello")
		require.NoError(t, err)
		assert.Equal(t, "HELLO", normalized)
	})

	t.Run("Error_FillSymbolOutsideAlphabet", func(t *testing.T) {
		_, err := NewCodec('x', domain.TextPolicyStrict)
		assert.ErrorIs(t, err, domain.ErrInvalidCharacter)
	})

	t.Run("Error_UnknownPolicy", func(t *testing.T) {
		_, err := NewCodec('X', domain.TextPolicy("lenient"))
		assert.Error(t, err)
	})
}

func TestCodec_Normalize(t *testing.T) {
	strict, err := NewCodec('X', domain.TextPolicyStrict)
	require.NoError(t, err)
	passthrough, err := NewCodec('X', domain.TextPolicyPassthrough)
	require.NoError(t, err)

	tests := []struct {
		name     string
		codec    *Codec
		input    string
		expected string
		err      error
	}{
		{name: "Success_StrictUppercases", codec: strict, input: "Hello", expected: "HELLO"},
		{name: "Success_StrictAlreadyNormal", codec: strict, input: "HELLO", expected: "HELLO"},
		{name: "Error_StrictSpace", codec: strict, input: "HELLO WORLD", err: domain.ErrInvalidCharacter},
		{name: "Error_StrictDigit", codec: strict, input: "ABC1", err: domain.ErrInvalidCharacter},
		{name: "Error_StrictNonASCIILetter", codec: strict, input: "café", err: domain.ErrInvalidCharacter},
		{name: "Error_Empty", codec: strict, input: "", err: domain.ErrMalformedInput},
		{name: "Success_PassthroughKeepsOthers", codec: passthrough, input: "Hello, World!", expected: "HELLO, WORLD!"},
		{name: "Error_PassthroughEmpty", codec: passthrough, input: "", err: domain.ErrMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := tt.codec.Normalize(tt.input)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, normalized)
		})
	}
}

func TestCodec_NormalizeIsIdempotent(t *testing.T) {
	passthrough, err := NewCodec('X', domain.TextPolicyPassthrough)
	require.NoError(t, err)

	for _, input := range []string{"hello", "Attack at dawn!", "MiXeD 123 case", "über-cool"} {
		once, err := passthrough.Normalize(input)
		require.NoError(t, err)

		twice, err := passthrough.Normalize(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

func TestCodec_Pad(t *testing.T) {
	codec, err := NewCodec('X', domain.TextPolicyStrict)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 4, 11, 11, 14, 23}, codec.Pad([]int{7, 4, 11, 11, 14}, 2))
	assert.Equal(t, []int{7, 4}, codec.Pad([]int{7, 4}, 2))
	assert.Equal(t, []int{0, 23, 23}, codec.Pad([]int{0}, 3))

	zCodec, err := NewCodec('Z', domain.TextPolicyStrict)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 25}, zCodec.Pad([]int{0}, 2))
}

func TestLayout_Render(t *testing.T) {
	codec, err := NewCodec('X', domain.TextPolicyPassthrough)
	require.NoError(t, err)

	text := codec.split("HI, YOU")
	assert.Equal(t, []int{0, 1, 4, 5, 6}, text.positions)
	assert.Equal(t, []int{7, 8, 24, 14, 20}, text.indices)

	rendered, err := text.render([]int{0, 1, 2, 3, 4, 23})
	require.NoError(t, err)
	assert.Equal(t, "AB, CDEX", rendered)
}
