package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/hybridcrypt/internal/errors"
	"github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

func TestParseKeyMatrix_Success(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.KeyMatrix
	}{
		{
			name:     "Success_RowsByNewline",
			input:    "2 3\n1 4",
			expected: domain.KeyMatrix{{2, 3}, {1, 4}},
		},
		{
			name:     "Success_FlattenedSingleLine",
			input:    "2 3 1 4",
			expected: domain.KeyMatrix{{2, 3}, {1, 4}},
		},
		{
			name:     "Success_CRLFAndBlankLines",
			input:    "\r\n6 24 1\r\n13 16 10\r\n\r\n20 17 15\r\n",
			expected: domain.KeyMatrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}},
		},
		{
			name:     "Success_EntriesReducedModN",
			input:    "28 29\n27 30",
			expected: domain.KeyMatrix{{2, 3}, {1, 4}},
		},
		{
			name:     "Success_EntriesBeyondIntReducedModN",
			input:    "99999999999999999999 3\n1 4",
			expected: domain.KeyMatrix{{99999999999999999999 % 26, 3}, {1, 4}},
		},
		{
			name:     "Success_NonSquareLeftToValidator",
			input:    "1 2 3\n4 5 6",
			expected: domain.KeyMatrix{{1, 2, 3}, {4, 5, 6}},
		},
		{
			name:     "Success_ShortSingleLineKeptAsRow",
			input:    "1 2",
			expected: domain.KeyMatrix{{1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix, err := domain.ParseKeyMatrix(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, matrix)
		})
	}
}

func TestParseKeyMatrix_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Error_Empty", input: ""},
		{name: "Error_OnlyWhitespace", input: " \n\t\n"},
		{name: "Error_NonNumeric", input: "2 a\n1 4"},
		{name: "Error_Negative", input: "2 -3\n1 4"},
		{name: "Error_RaggedRows", input: "2 3\n1"},
		{name: "Error_Decimal", input: "2.5 3\n1 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matrix, err := domain.ParseKeyMatrix(tt.input)

			assert.Nil(t, matrix)
			assert.ErrorIs(t, err, domain.ErrMalformedInput)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestKeyMatrixFromValues(t *testing.T) {
	t.Run("Success_Reshape3x3", func(t *testing.T) {
		matrix, err := domain.KeyMatrixFromValues([]int{6, 24, 1, 13, 16, 10, 20, 17, 15})

		require.NoError(t, err)
		assert.Equal(t, domain.KeyMatrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, matrix)
	})

	t.Run("Error_NotSquare", func(t *testing.T) {
		_, err := domain.KeyMatrixFromValues([]int{1, 2, 3})
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})

	t.Run("Error_SingleValue", func(t *testing.T) {
		_, err := domain.KeyMatrixFromValues([]int{1})
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})

	t.Run("Error_ResidueOutOfRange", func(t *testing.T) {
		_, err := domain.KeyMatrixFromValues([]int{2, 3, 1, 26})
		assert.ErrorIs(t, err, domain.ErrInvalidKey)
	})
}

func TestKeyMatrix_StringRoundTrip(t *testing.T) {
	matrix := domain.KeyMatrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}

	assert.Equal(t, "6 24 1\n13 16 10\n20 17 15", matrix.String())

	parsed, err := domain.ParseKeyMatrix(matrix.String())
	require.NoError(t, err)
	assert.Equal(t, matrix, parsed)
}

func TestKeyMatrix_FlattenAndDimension(t *testing.T) {
	matrix := domain.KeyMatrix{{2, 3}, {1, 4}}

	assert.Equal(t, []int{2, 3, 1, 4}, matrix.Flatten())
	assert.Equal(t, 2, matrix.Dimension())
}

func TestKeyDimension(t *testing.T) {
	for _, tt := range []struct {
		count    int
		expected int
	}{
		{count: 4, expected: 2},
		{count: 9, expected: 3},
		{count: 64, expected: domain.MaxDimension},
	} {
		n, err := domain.KeyDimension(tt.count)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, n)
	}

	for _, count := range []int{0, 1, 3, 5, 81, 2000} {
		_, err := domain.KeyDimension(count)
		assert.ErrorIs(t, err, domain.ErrInvalidKey, "count %d", count)
	}
}
