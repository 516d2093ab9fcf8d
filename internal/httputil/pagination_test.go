package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/hybridcrypt/internal/errors"
	"github.com/allisson/hybridcrypt/internal/httputil"
)

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		url         string
		expected    httputil.Page
		expectError bool
		errorMsg    string
	}{
		{
			name:     "defaults",
			url:      "/",
			expected: httputil.Page{Offset: 0, Limit: httputil.DefaultPageLimit},
		},
		{
			name:     "custom values",
			url:      "/?offset=10&limit=20",
			expected: httputil.Page{Offset: 10, Limit: 20},
		},
		{
			name:     "max limit",
			url:      "/?limit=100",
			expected: httputil.Page{Offset: 0, Limit: httputil.MaxPageLimit},
		},
		{
			name:        "negative offset",
			url:         "/?offset=-1",
			expectError: true,
			errorMsg:    "invalid pagination: offset must be a non-negative integer",
		},
		{
			name:        "offset not an integer",
			url:         "/?offset=abc",
			expectError: true,
			errorMsg:    "invalid pagination: offset must be a non-negative integer",
		},
		{
			name:        "explicit zero limit",
			url:         "/?limit=0",
			expectError: true,
			errorMsg:    "invalid pagination: limit must be between 1 and 100",
		},
		{
			name:        "limit above max",
			url:         "/?limit=101",
			expectError: true,
			errorMsg:    "invalid pagination: limit must be between 1 and 100",
		},
		{
			name:        "empty limit",
			url:         "/?limit=",
			expectError: true,
			errorMsg:    "invalid pagination: limit must be between 1 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			page, err := httputil.ParsePage(c)

			if tt.expectError {
				assert.EqualError(t, err, tt.errorMsg)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
				assert.Equal(t, "invalid_pagination", apperrors.CodeOf(err))
				assert.Equal(t, httputil.Page{}, page)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, page)
		})
	}
}
