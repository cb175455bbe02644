package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/azgeda96/secure-pass-vault/internal/logger"
	"github.com/azgeda96/secure-pass-vault/models"
)

// credentialColumns is the canonical column order used by every credential
// query; scanCredential must match it.
var credentialColumns = []string{
	"id", "user_id", "machine", "service", "person", "username",
	"password", "ip_address", "port", "url", "status",
	"created_at", "updated_at",
}

// psql builds queries with $N placeholders for PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. Queries are assembled with squirrel: the UPDATE is
// genuinely dynamic (only patched columns appear in SET) and the remaining
// statements stay consistent with it.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// ListByOwner implements [CredentialRepository]. Records are ordered by
// machine name ascending with id as the deterministic tie-break.
func (r *credentialRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("machine ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListByOwner").Msg("error querying credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0)
	for rows.Next() {
		var c models.Credential
		if err = scanCredential(rows, &c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials = append(credentials, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// Insert implements [CredentialRepository]. The id and both timestamps come
// back from the store via RETURNING.
func (r *credentialRepository) Insert(ctx context.Context, userID int64, draft models.CredentialDraft) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(models.Credential{}.TableName()).
		Columns("user_id", "machine", "service", "person", "username",
			"password", "ip_address", "port", "url", "status").
		Values(userID, draft.Machine, draft.Service, draft.Person, draft.Username,
			draft.Password, draft.IPAddress, draft.Port, draft.URL, draft.Status).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Credential
	if err = scanCredential(r.db.QueryRowContext(ctx, query, args...), &created); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Insert").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// Update implements [CredentialRepository]. Only non-nil patch fields are
// written; updated_at is always refreshed so the timestamp invariant
// (updated_at >= created_at) is maintained by the store.
func (r *credentialRepository) Update(ctx context.Context, userID int64, id string, patch models.CredentialPatch) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return models.Credential{}, ErrEmptyPatch
	}

	builder := psql.
		Update(models.Credential{}.TableName()).
		Set("updated_at", sq.Expr("NOW()"))

	for column, value := range map[string]*string{
		"machine":    patch.Machine,
		"service":    patch.Service,
		"person":     patch.Person,
		"username":   patch.Username,
		"password":   patch.Password,
		"ip_address": patch.IPAddress,
		"port":       patch.Port,
		"url":        patch.URL,
		"status":     patch.Status,
	} {
		if value != nil {
			builder = builder.Set(column, *value)
		}
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Credential
	if err = scanCredential(r.db.QueryRowContext(ctx, query, args...), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.Update").Msg("error updating credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// Delete implements [CredentialRepository]. Deletion is terminal: there is no
// soft-delete flag to flip back.
func (r *credentialRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Delete(models.Credential{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Delete").Msg("error deleting credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner, c *models.Credential) error {
	return row.Scan(
		&c.ID, &c.UserID, &c.Machine, &c.Service, &c.Person, &c.Username,
		&c.Password, &c.IPAddress, &c.Port, &c.URL, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

func returningColumns() string {
	out := credentialColumns[0]
	for _, col := range credentialColumns[1:] {
		out += ", " + col
	}
	return out
}
