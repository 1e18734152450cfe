// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "username", "full_name", "avatar_url",
	"birthdate", "gender", "phone", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// userRow mirrors the users table minus the password hash.
type userRow struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	Username  string     `db:"username"`
	FullName  *string    `db:"full_name"`
	AvatarURL *string    `db:"avatar_url"`
	Birthdate *time.Time `db:"birthdate"`
	Gender    *string    `db:"gender"`
	Phone     *string    `db:"phone"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Username:  r.Username,
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		Birthdate: r.Birthdate,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Gender != nil {
		g := domain.Gender(*r.Gender)
		u.Gender = &g
	}
	return u
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return row.toDomain(), nil
}

// Create inserts a new user with their password hash and returns the
// persisted domain.User. Email and username uniqueness are enforced by DB
// constraints and surface as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "username", "password_hash", "full_name", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Username, passwordHash, u.FullName, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// UpdateProfile applies a partial update to the scalar profile fields and
// returns the updated user. An empty patch is a plain read.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().Update(table).Set("updated_at", squirrel.Expr("now()"))
	if patch.Username != nil {
		update = update.Set("username", *patch.Username)
	}
	update = setNullable(update, "full_name", patch.FullName)
	update = setNullable(update, "avatar_url", patch.AvatarURL)
	update = setNullable(update, "gender", patch.Gender)
	update = setNullable(update, "phone", patch.Phone)
	if patch.Birthdate != nil {
		if patch.Birthdate.IsZero() {
			update = update.Set("birthdate", nil)
		} else {
			update = update.Set("birthdate", *patch.Birthdate)
		}
	}

	sql, args, err := update.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var row userRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetPasswordHash returns the stored bcrypt hash for the given user.
func (r *Repo) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select("password_hash").From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", postgres.MapError(err, "user", id)
	}

	var hash string
	if err := pgxscan.Get(ctx, q, &hash, sql, args...); err != nil {
		return "", postgres.MapError(err, "user", id)
	}
	return hash, nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update(table).
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "user", id)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// setNullable sets col to the patch value, or NULL for a pointer to "".
func setNullable(b squirrel.UpdateBuilder, col string, v *string) squirrel.UpdateBuilder {
	if v == nil {
		return b
	}
	if *v == "" {
		return b.Set(col, nil)
	}
	return b.Set(col, *v)
}

func joined() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
