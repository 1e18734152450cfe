// Package template implements the ContractTemplate repository using PostgreSQL.
package template

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

const table = "contract_templates"

var columns = []string{"id", "name", "category", "description", "content", "created_at"}

// Repo provides template persistence backed by PostgreSQL. Templates are
// shared library data; there is no per-user scoping here.
type Repo struct {
	db postgres.Querier
}

// New creates a new template repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type templateRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Description string    `db:"description"`
	Content     string    `db:"content"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r templateRow) toDomain() *domain.ContractTemplate {
	return &domain.ContractTemplate{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Content:     r.Content,
		CreatedAt:   r.CreatedAt,
	}
}

// List returns all templates ordered by category, then name.
func (r *Repo) List(ctx context.Context) ([]domain.ContractTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		OrderBy("category", "name").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "template", nil)
	}

	var rows []templateRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "template", nil)
	}

	templates := make([]domain.ContractTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, *row.toDomain())
	}
	return templates, nil
}

// GetByID returns a single template.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "template", id)
	}

	var row templateRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "template", id)
	}
	return row.toDomain(), nil
}

// Upsert inserts a template or refreshes an existing one matched by name.
// The seeder uses it so reruns are idempotent.
func (r *Repo) Upsert(ctx context.Context, t *domain.ContractTemplate) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(t.ID, t.Name, t.Category, t.Description, t.Content, t.CreatedAt).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			content = EXCLUDED.content`).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "template", t.Name)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "template", t.Name)
	}
	return nil
}
