// Package repository implements envelope persistence.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types. Wrapped keys are stored in
// their canonical comma-separated form, NULL when absent.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/hybridcrypt/internal/database"
	envelopeDomain "github.com/allisson/hybridcrypt/internal/envelope/domain"
	apperrors "github.com/allisson/hybridcrypt/internal/errors"
)

// PostgreSQLEnvelopeRepository implements Envelope persistence for PostgreSQL.
type PostgreSQLEnvelopeRepository struct {
	db *sql.DB
}

// NewPostgreSQLEnvelopeRepository creates a new PostgreSQL envelope repository.
func NewPostgreSQLEnvelopeRepository(db *sql.DB) *PostgreSQLEnvelopeRepository {
	return &PostgreSQLEnvelopeRepository{db: db}
}

// Create inserts a new Envelope into the PostgreSQL database.
func (p *PostgreSQLEnvelopeRepository) Create(ctx context.Context, envelope *envelopeDomain.Envelope) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO envelopes (id, ciphertext, wrapped_key, message_length, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		envelope.ID,
		envelope.Ciphertext,
		wrappedKeyToNull(envelope.WrappedKey),
		envelope.MessageLength,
		envelope.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create envelope")
	}
	return nil
}

// Get retrieves an Envelope by id. Returns ErrEnvelopeNotFound if it does not exist.
func (p *PostgreSQLEnvelopeRepository) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, ciphertext, wrapped_key, message_length, created_at
			  FROM envelopes
			  WHERE id = $1`

	var envelope envelopeDomain.Envelope
	var wrappedKey sql.NullString

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&envelope.ID,
		&envelope.Ciphertext,
		&wrappedKey,
		&envelope.MessageLength,
		&envelope.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, envelopeDomain.ErrEnvelopeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get envelope")
	}

	if envelope.WrappedKey, err = wrappedKeyFromNull(wrappedKey); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// List retrieves envelopes ordered by id descending (newest first, ids are UUIDv7).
// Returns an empty slice when no envelopes are found.
func (p *PostgreSQLEnvelopeRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*envelopeDomain.Envelope, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, ciphertext, wrapped_key, message_length, created_at
			  FROM envelopes
			  ORDER BY id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list envelopes")
	}
	defer func() {
		_ = rows.Close()
	}()

	envelopes := make([]*envelopeDomain.Envelope, 0)
	for rows.Next() {
		var envelope envelopeDomain.Envelope
		var wrappedKey sql.NullString

		if err := rows.Scan(
			&envelope.ID,
			&envelope.Ciphertext,
			&wrappedKey,
			&envelope.MessageLength,
			&envelope.CreatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan envelope row")
		}

		if envelope.WrappedKey, err = wrappedKeyFromNull(wrappedKey); err != nil {
			return nil, err
		}
		envelopes = append(envelopes, &envelope)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate envelopes")
	}

	return envelopes, nil
}

// Delete removes an Envelope. Returns ErrEnvelopeNotFound if no row was deleted.
func (p *PostgreSQLEnvelopeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM envelopes WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete envelope")
	}
	return checkDeleted(result)
}
