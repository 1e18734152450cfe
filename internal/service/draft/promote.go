package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// Promote freezes the submitted document into a new, not-yet-analyzed
// inspection. The draft must exist but the frozen name and content come
// from the input, which may be newer than the last save. Unless KeepDraft
// is set the draft is removed in the same transaction, so the document is
// never both editable and frozen.
func (s *Service) Promote(ctx context.Context, input PromoteInput) (*domain.Inspection, error) {
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

	d, err := s.drafts.GetByID(ctx, userID, input.DraftID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	count, err := s.inspections.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count inspections: %w", err)
	}
	if count >= s.cfg.MaxInspectionsPerUser {
		return nil, domain.NewValidationError("inspections", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxInspectionsPerUser))
	}

	var created *domain.Inspection
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.inspections.Create(txCtx, &domain.Inspection{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      input.Name,
			Content:   input.Content,
			Score:     domain.ScoreUnanalyzed,
			CreatedAt: time.Now(),
		})
		if createErr != nil {
			return fmt.Errorf("create inspection: %w", createErr)
		}

		if !input.KeepDraft {
			if _, deleteErr := s.drafts.Delete(txCtx, userID, d.ID); deleteErr != nil {
				return fmt.Errorf("delete draft: %w", deleteErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "draft promoted to inspection",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", d.ID.String()),
		slog.String("inspection_id", created.ID.String()),
		slog.Bool("draft_kept", input.KeepDraft),
	)

	return created, nil
}
