// Package inspection implements the Inspection repository using PostgreSQL.
//
// analysis_data is a jsonb column; pgx v5 marshals *domain.AnalysisReport to
// and from it directly, so no intermediate encoding step is needed.
package inspection

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

const table = "inspections"

var columns = []string{"id", "user_id", "name", "content", "score", "created_at", "analysis_data"}

// Repo provides inspection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new inspection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type inspectionRow struct {
	ID           uuid.UUID              `db:"id"`
	UserID       uuid.UUID              `db:"user_id"`
	Name         string                 `db:"name"`
	Content      string                 `db:"content"`
	Score        int                    `db:"score"`
	CreatedAt    time.Time              `db:"created_at"`
	AnalysisData *domain.AnalysisReport `db:"analysis_data"`
}

func (r inspectionRow) toDomain() *domain.Inspection {
	return &domain.Inspection{
		ID:           r.ID,
		UserID:       r.UserID,
		Name:         r.Name,
		Content:      r.Content,
		Score:        r.Score,
		CreatedAt:    r.CreatedAt,
		AnalysisData: r.AnalysisData,
	}
}

// ListByUser returns the user's inspections, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "inspection", userID)
	}

	var rows []inspectionRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inspection", userID)
	}

	inspections := make([]domain.Inspection, 0, len(rows))
	for _, row := range rows {
		inspections = append(inspections, *row.toDomain())
	}
	return inspections, nil
}

// GetByID returns an inspection owned by the given user.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "inspection", id)
	}

	var row inspectionRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inspection", id)
	}
	return row.toDomain(), nil
}

// Create inserts a new inspection. The score/analysis_data pairing is also
// guarded by a table check constraint; a violation maps to ErrValidation.
func (r *Repo) Create(ctx context.Context, ins *domain.Inspection) (*domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(ins.ID, ins.UserID, ins.Name, ins.Content, ins.Score, ins.CreatedAt, ins.AnalysisData).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "inspection", ins.ID)
	}

	var row inspectionRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inspection", ins.ID)
	}
	return row.toDomain(), nil
}

// Delete removes the user's inspection. The bool reports whether a row was
// actually removed.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "inspection", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "inspection", id)
	}
	return tag.RowsAffected() > 0, nil
}

// AttachAnalysis stores an analysis result on a not-yet-analyzed inspection.
// It only matches rows whose score is still the unanalyzed sentinel, so a
// concurrent second analysis loses and gets ErrNotFound back.
func (r *Repo) AttachAnalysis(ctx context.Context, userID, id uuid.UUID, score int, report *domain.AnalysisReport) (*domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("score", score).
		Set("analysis_data", report).
		Where(squirrel.Eq{"id": id, "user_id": userID, "score": domain.ScoreUnanalyzed}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "inspection", id)
	}

	var row inspectionRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "inspection", id)
	}
	return row.toDomain(), nil
}

// ReplaceAll swaps the user's entire inspection collection for the given set.
// Callers run it inside a transaction.
func (r *Repo) ReplaceAll(ctx context.Context, userID uuid.UUID, inspections []domain.Inspection) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "inspection", userID)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "inspection", userID)
	}

	if len(inspections) == 0 {
		return nil
	}

	insert := postgres.Builder().Insert(table).Columns(columns...)
	for _, ins := range inspections {
		insert = insert.Values(ins.ID, userID, ins.Name, ins.Content, ins.Score, ins.CreatedAt, ins.AnalysisData)
	}
	sql, args, err = insert.ToSql()
	if err != nil {
		return postgres.MapError(err, "inspection", userID)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "inspection", userID)
	}
	return nil
}

// CountByUser returns the number of inspections the user owns.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("count(*)").From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "inspection", userID)
	}

	var count int
	if err := pgxscan.Get(ctx, q, &count, sql, args...); err != nil {
		return 0, postgres.MapError(err, "inspection", userID)
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
