package inspection

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// View returns a single inspection owned by the authenticated user. It is
// a pure read: viewing never changes the record.
func (s *Service) View(ctx context.Context, inspectionID uuid.UUID) (*domain.Inspection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ins, err := s.inspections.GetByID(ctx, userID, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("inspection.View: %w", err)
	}

	return ins, nil
}

// List returns all inspections of the authenticated user, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Inspection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	inspections, err := s.inspections.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("inspection.List: %w", err)
	}

	return inspections, nil
}
