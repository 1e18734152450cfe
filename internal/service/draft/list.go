package draft

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// List returns all drafts of the authenticated user, most recently saved
// first.
func (s *Service) List(ctx context.Context) ([]domain.Draft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	drafts, err := s.drafts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("draft.List: %w", err)
	}

	return drafts, nil
}

// Get returns a single draft owned by the authenticated user.
func (s *Service) Get(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	d, err := s.drafts.GetByID(ctx, userID, draftID)
	if err != nil {
		return nil, fmt.Errorf("draft.Get: %w", err)
	}

	return d, nil
}
