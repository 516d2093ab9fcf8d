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

// MySQLEnvelopeRepository implements Envelope persistence for MySQL databases.
type MySQLEnvelopeRepository struct {
	db *sql.DB
}

// NewMySQLEnvelopeRepository creates a new MySQL envelope repository.
func NewMySQLEnvelopeRepository(db *sql.DB) *MySQLEnvelopeRepository {
	return &MySQLEnvelopeRepository{db: db}
}

// Create inserts a new Envelope into the MySQL database.
func (m *MySQLEnvelopeRepository) Create(ctx context.Context, envelope *envelopeDomain.Envelope) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO envelopes (id, ciphertext, wrapped_key, message_length, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := envelope.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal envelope id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLEnvelopeRepository) Get(ctx context.Context, id uuid.UUID) (*envelopeDomain.Envelope, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, ciphertext, wrapped_key, message_length, created_at
			  FROM envelopes
			  WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal envelope id")
	}

	envelope, err := scanMySQLEnvelope(querier.QueryRowContext(ctx, query, idBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, envelopeDomain.ErrEnvelopeNotFound
		}
		return nil, err
	}
	return envelope, nil
}

// List retrieves envelopes ordered by id descending with pagination support.
// Returns an empty slice when no envelopes are found.
func (m *MySQLEnvelopeRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*envelopeDomain.Envelope, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, ciphertext, wrapped_key, message_length, created_at
			  FROM envelopes
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list envelopes")
	}
	defer func() {
		_ = rows.Close()
	}()

	envelopes := make([]*envelopeDomain.Envelope, 0)
	for rows.Next() {
		envelope, err := scanMySQLEnvelope(rows)
		if err != nil {
			return nil, err
		}
		envelopes = append(envelopes, envelope)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate envelopes")
	}

	return envelopes, nil
}

// Delete removes an Envelope. Returns ErrEnvelopeNotFound if no row was deleted.
func (m *MySQLEnvelopeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM envelopes WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal envelope id")
	}

	result, err := querier.ExecContext(ctx, query, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete envelope")
	}
	return checkDeleted(result)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanMySQLEnvelope scans one envelope row, decoding the BINARY(16) id.
// sql.ErrNoRows is returned unwrapped so callers can map it.
func scanMySQLEnvelope(row rowScanner) (*envelopeDomain.Envelope, error) {
	var envelope envelopeDomain.Envelope
	var idBytes []byte
	var wrappedKey sql.NullString

	err := row.Scan(
		&idBytes,
		&envelope.Ciphertext,
		&wrappedKey,
		&envelope.MessageLength,
		&envelope.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, "failed to scan envelope row")
	}

	if err := envelope.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal envelope id")
	}

	if envelope.WrappedKey, err = wrappedKeyFromNull(wrappedKey); err != nil {
		return nil, err
	}
	return &envelope, nil
}
