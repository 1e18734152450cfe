package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. It is the aggregate
// root for all contract data: drafts and inspections belong to exactly one
// user and have no identity outside their owner.
type User struct {
	ID        uuid.UUID
	Email     string
	Username  string
	FullName  *string
	AvatarURL *string
	Birthdate *time.Time
	Gender    *Gender
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfilePatch describes a partial profile update. Nil means "leave
// unchanged"; a pointer to the zero value clears the field to NULL.
type ProfilePatch struct {
	Username  *string
	FullName  *string
	AvatarURL *string
	Birthdate *time.Time
	Gender    *string
	Phone     *string
}

// IsEmpty reports whether the patch carries no changes.
func (p ProfilePatch) IsEmpty() bool {
	return p.Username == nil && p.FullName == nil && p.AvatarURL == nil &&
		p.Birthdate == nil && p.Gender == nil && p.Phone == nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// PasswordResetToken represents a hashed one-shot password reset token.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	UsedAt    *time.Time
}

// IsUsable reports whether the token can still redeem a password reset.
func (t *PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && t.ExpiresAt.After(now)
}
