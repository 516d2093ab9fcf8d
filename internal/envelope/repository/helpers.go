package repository

import (
	"database/sql"

	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
	apperrors "github.com/allisson/hybridcrypt/internal/errors"
	hybridDomain "github.com/allisson/hybridcrypt/internal/hybrid/domain"
)

func wrappedKeyToNull(wrappedKey hybridDomain.WrappedKey) sql.NullString {
	if len(wrappedKey) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: wrappedKey.String(), Valid: true}
}

func wrappedKeyFromNull(value sql.NullString) (hybridDomain.WrappedKey, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	wrappedKey, err := hybridDomain.ParseWrappedKey(value.String)
	if err != nil {
		// A stored key that no longer parses is corruption, not caller input
		return nil, apperrors.Wrap(apperrors.ErrInternal, err.Error())
	}
	return wrappedKey, nil
}

func checkDeleted(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return envelopeDomain.ErrEnvelopeNotFound
	}
	return nil
}
