package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/hybridcrypt/internal/errors"
)

// Page bounds for list endpoints.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// ErrInvalidPage is returned for offset or limit values outside the accepted range.
var ErrInvalidPage = apperrors.NewCoded(apperrors.ErrInvalidInput, "invalid_pagination", "invalid pagination")

// Page is a window over a list ordered by the repository.
type Page struct {
	Offset int
	Limit  int
}

// ParsePage reads the offset and limit query parameters.
// Missing parameters fall back to offset 0 and DefaultPageLimit.
func ParsePage(c *gin.Context) (Page, error) {
	page := Page{Offset: 0, Limit: DefaultPageLimit}

	if raw, ok := c.GetQuery("offset"); ok {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Page{}, fmt.Errorf("%w: offset must be a non-negative integer", ErrInvalidPage)
		}
		page.Offset = offset
	}

	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxPageLimit {
			return Page{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPage, MaxPageLimit)
		}
		page.Limit = limit
	}

	return page, nil
}
