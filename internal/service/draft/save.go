package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// Save persists a draft's name and content and refreshes its last-saved
// timestamp. The draft must already exist: saving is never an upsert.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Draft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if len(input.Content) > s.cfg.MaxContentBytes {
		return nil, domain.NewValidationError("content", fmt.Sprintf("too large (max %d bytes)", s.cfg.MaxContentBytes))
	}

	// Existence is checked before the write so a vanished draft surfaces
	// as NotFound rather than a silent no-op.
	if _, err := s.drafts.GetByID(ctx, userID, input.DraftID); err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	updated, err := s.drafts.Update(ctx, userID, input.DraftID, input.Name, input.Content, time.Now())
	if err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}

	s.log.InfoContext(ctx, "draft saved",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", updated.ID.String()),
	)

	return updated, nil
}
