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

const resetTable = "password_reset_tokens"

var resetColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "used_at"}

// ResetRepo provides password reset token persistence.
type ResetRepo struct {
	db postgres.Querier
}

// NewReset creates a new password reset token repository.
func NewReset(db postgres.Querier) *ResetRepo {
	return &ResetRepo{db: db}
}

type resetRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	UsedAt    *time.Time `db:"used_at"`
}

func (r resetRow) toDomain() *domain.PasswordResetToken {
	return &domain.PasswordResetToken{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		UsedAt:    r.UsedAt,
	}
}

// Create stores a new reset token hash for the user.
func (r *ResetRepo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(resetTable).
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, tokenHash, expiresAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "reset token", userID)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "reset token", userID)
	}
	return nil
}

// GetByHash looks up a reset token by its hash.
func (r *ResetRepo) GetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(resetColumns...).From(resetTable).
		Where(squirrel.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "reset token", "hash")
	}

	var row resetRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reset token", "hash")
	}
	return row.toDomain(), nil
}

// MarkUsed consumes a reset token. Only an unused token matches, so a second
// redemption attempt reports ErrNotFound via the zero rows path.
func (r *ResetRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(resetTable).
		Set("used_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "used_at": nil}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "reset token", id)
	}

	var returned uuid.UUID
	if err := pgxscan.Get(ctx, q, &returned, sql, args...); err != nil {
		return postgres.MapError(err, "reset token", id)
	}
	return nil
}

// DeleteExpired removes reset tokens past their expiry and returns the
// number of rows removed.
func (r *ResetRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(resetTable).
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "reset token", nil)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "reset token", nil)
	}
	return tag.RowsAffected(), nil
}
