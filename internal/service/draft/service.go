// Package draft implements the draft lifecycle: create from a library
// template or from scratch, save, delete and promote to an inspection.
package draft

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/config"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

type draftRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Draft, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Draft, error)
	Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	Update(ctx context.Context, userID, id uuid.UUID, name, content string, lastSaved time.Time) (*domain.Draft, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type templateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractTemplate, error)
}

type inspectionRepo interface {
	Create(ctx context.Context, ins *domain.Inspection) (*domain.Inspection, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides draft management operations.
type Service struct {
	log         *slog.Logger
	drafts      draftRepo
	templates   templateRepo
	inspections inspectionRepo
	tx          txManager
	cfg         config.ContractsConfig
}

// NewService creates a new draft service instance.
func NewService(
	logger *slog.Logger,
	drafts draftRepo,
	templates templateRepo,
	inspections inspectionRepo,
	tx txManager,
	cfg config.ContractsConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "draft"),
		drafts:      drafts,
		templates:   templates,
		inspections: inspections,
		tx:          tx,
		cfg:         cfg,
	}
}
