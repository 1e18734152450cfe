// Package template exposes the read-only contract template library.
package template

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

type templateRepo interface {
	List(ctx context.Context) ([]domain.ContractTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractTemplate, error)
}

// Service provides template library reads. Templates are seeded offline;
// nothing here mutates them.
type Service struct {
	log       *slog.Logger
	templates templateRepo
}

// NewService creates a new template service instance.
func NewService(logger *slog.Logger, templates templateRepo) *Service {
	return &Service{
		log:       logger.With("service", "template"),
		templates: templates,
	}
}

// List returns the whole template library.
func (s *Service) List(ctx context.Context) ([]domain.ContractTemplate, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("template.List: %w", err)
	}
	return templates, nil
}

// Get returns a single library template.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.ContractTemplate, error) {
	tmpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("template.Get: %w", err)
	}
	return tmpl, nil
}
