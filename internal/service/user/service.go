// Package user implements profile operations on the contract aggregate:
// scalar profile updates and whole-collection replacement of the owned
// drafts and inspections.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.User, error)
}

// draftRepo defines the draft repository interface needed by user service.
type draftRepo interface {
	ReplaceAll(ctx context.Context, userID uuid.UUID, drafts []domain.Draft) error
}

// inspectionRepo defines the inspection repository interface needed by user service.
type inspectionRepo interface {
	ReplaceAll(ctx context.Context, userID uuid.UUID, inspections []domain.Inspection) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	drafts      draftRepo
	inspections inspectionRepo
	tx          txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	drafts draftRepo,
	inspections inspectionRepo,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "user"),
		users:       users,
		drafts:      drafts,
		inspections: inspections,
		tx:          tx,
	}
}
