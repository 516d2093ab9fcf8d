package domain

import (
	apperrors "github.com/allisson/hybridcrypt/internal/errors"
)

// ErrEnvelopeNotFound indicates no envelope exists with the requested id.
var ErrEnvelopeNotFound = apperrors.NewCoded(apperrors.ErrNotFound, "envelope_not_found", "envelope not found")
