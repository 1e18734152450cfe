// Package draft implements the Draft repository using PostgreSQL.
package draft

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

const table = "drafts"

var columns = []string{"id", "user_id", "original_template_id", "name", "content", "last_saved"}

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new draft repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type draftRow struct {
	ID                 uuid.UUID  `db:"id"`
	UserID             uuid.UUID  `db:"user_id"`
	OriginalTemplateID *uuid.UUID `db:"original_template_id"`
	Name               string     `db:"name"`
	Content            string     `db:"content"`
	LastSaved          time.Time  `db:"last_saved"`
}

func (r draftRow) toDomain() *domain.Draft {
	return &domain.Draft{
		ID:                 r.ID,
		UserID:             r.UserID,
		OriginalTemplateID: r.OriginalTemplateID,
		Name:               r.Name,
		Content:            r.Content,
		LastSaved:          r.LastSaved,
	}
}

// ListByUser returns the user's drafts, most recently saved first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("last_saved DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "draft", userID)
	}

	var rows []draftRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "draft", userID)
	}

	drafts := make([]domain.Draft, 0, len(rows))
	for _, row := range rows {
		drafts = append(drafts, *row.toDomain())
	}
	return drafts, nil
}

// GetByID returns a draft owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "draft", id)
	}

	var row draftRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "draft", id)
	}
	return row.toDomain(), nil
}

// Create inserts a new draft.
func (r *Repo) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.UserID, d.OriginalTemplateID, d.Name, d.Content, d.LastSaved).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "draft", d.ID)
	}

	var row draftRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "draft", d.ID)
	}
	return row.toDomain(), nil
}

// Update replaces name, content and last_saved of the user's draft.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, name, content string, lastSaved time.Time) (*domain.Draft, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("content", content).
		Set("last_saved", lastSaved).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "draft", id)
	}

	var row draftRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "draft", id)
	}
	return row.toDomain(), nil
}

// Delete removes the user's draft. Deleting an absent draft is not an error;
// the bool reports whether a row was actually removed.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "draft", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "draft", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ReplaceAll swaps the user's entire draft collection for the given set.
// Callers run it inside a transaction so readers never observe the gap.
func (r *Repo) ReplaceAll(ctx context.Context, userID uuid.UUID, drafts []domain.Draft) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "draft", userID)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "draft", userID)
	}

	if len(drafts) == 0 {
		return nil
	}

	insert := postgres.Builder().Insert(table).Columns(columns...)
	for _, d := range drafts {
		insert = insert.Values(d.ID, userID, d.OriginalTemplateID, d.Name, d.Content, d.LastSaved)
	}
	sql, args, err = insert.ToSql()
	if err != nil {
		return postgres.MapError(err, "draft", userID)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "draft", userID)
	}
	return nil
}

// CountByUser returns the number of drafts the user owns.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("count(*)").From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "draft", userID)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "draft", userID)
	}
	return count, nil
}

func joined() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
