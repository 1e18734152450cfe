package draft

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// Delete removes a draft. Deleting an already-deleted draft is a no-op:
// the end state is the same either way.
func (s *Service) Delete(ctx context.Context, draftID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.drafts.Delete(ctx, userID, draftID)
	if err != nil {
		return fmt.Errorf("draft.Delete: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "draft deleted",
			slog.String("user_id", userID.String()),
			slog.String("draft_id", draftID.String()),
		)
	}

	return nil
}
