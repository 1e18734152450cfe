// Package inspection implements the inspection lifecycle: frozen contract
// documents, their listing and removal, and on-demand AI analysis.
package inspection

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/config"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

type inspectionRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Inspection, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Inspection, error)
	Create(ctx context.Context, ins *domain.Inspection) (*domain.Inspection, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	AttachAnalysis(ctx context.Context, userID, id uuid.UUID, score int, report *domain.AnalysisReport) (*domain.Inspection, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// analyzer produces a risk report for a contract document. Implementations
// live in internal/adapter/provider.
type analyzer interface {
	Analyze(ctx context.Context, name, content string) (*domain.AnalysisReport, error)
}

// Service provides inspection management operations.
type Service struct {
	log         *slog.Logger
	inspections inspectionRepo
	analyzer    analyzer
	cfg         config.ContractsConfig
}

// NewService creates a new inspection service instance.
func NewService(
	logger *slog.Logger,
	inspections inspectionRepo,
	an analyzer,
	cfg config.ContractsConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "inspection"),
		inspections: inspections,
		analyzer:    an,
		cfg:         cfg,
	}
}
