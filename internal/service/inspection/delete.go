package inspection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// Delete removes an inspection permanently. Deleting a missing inspection
// is a no-op.
func (s *Service) Delete(ctx context.Context, inspectionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	deleted, err := s.inspections.Delete(ctx, userID, inspectionID)
	if err != nil {
		return fmt.Errorf("inspection.Delete: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "inspection deleted",
			slog.String("user_id", userID.String()),
			slog.String("inspection_id", inspectionID.String()),
		)
	}

	return nil
}
