// Package token implements refresh and password reset token repositories
// using PostgreSQL. Only token hashes are stored; the raw values never touch
// the database.
package token

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

const refreshTable = "refresh_tokens"

var refreshColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// RefreshRepo provides refresh token persistence.
type RefreshRepo struct {
	db postgres.Querier
}

// NewRefresh creates a new refresh token repository.
func NewRefresh(db postgres.Querier) *RefreshRepo {
	return &RefreshRepo{db: db}
}

type refreshRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (r refreshRow) toDomain() *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		RevokedAt: r.RevokedAt,
	}
}

// Create stores a new refresh token hash for the user.
func (r *RefreshRepo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(refreshTable).
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiresAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh token", userID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh token", userID)
	}
	return nil
}

// GetByHash looks up a refresh token by its hash.
func (r *RefreshRepo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(refreshColumns...).From(refreshTable).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "refresh token", "hash")
	}

	var row refreshRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh token", "hash")
	}
	return row.toDomain(), nil
}

// RevokeByID marks one refresh token as revoked. Revoking twice is a no-op.
func (r *RefreshRepo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(refreshTable).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh token", id)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh token", id)
	}
	return nil
}

// RevokeAllByUser revokes every live refresh token the user holds.
func (r *RefreshRepo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(refreshTable).
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh token", userID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh token", userID)
	}
	return nil
}

// DeleteExpired removes refresh tokens past their expiry and returns the
// number of rows removed.
func (r *RefreshRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(refreshTable).
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "refresh token", nil)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh token", nil)
	}
	return tag.RowsAffected(), nil
}
