package inspection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// Create appends a new inspection for the authenticated user. Either shape
// passes: score=-1 with no report, or an analyzed score with its report.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Inspection, error) {
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

	count, err := s.inspections.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count inspections: %w", err)
	}
	if count >= s.cfg.MaxInspectionsPerUser {
		return nil, domain.NewValidationError("inspections", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxInspectionsPerUser))
	}

	created, err := s.inspections.Create(ctx, &domain.Inspection{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         input.Name,
		Content:      input.Content,
		Score:        input.Score,
		CreatedAt:    time.Now(),
		AnalysisData: input.AnalysisData,
	})
	if err != nil {
		return nil, fmt.Errorf("create inspection: %w", err)
	}

	s.log.InfoContext(ctx, "inspection created",
		slog.String("user_id", userID.String()),
		slog.String("inspection_id", created.ID.String()),
		slog.Bool("analyzed", created.IsAnalyzed()),
	)

	return created, nil
}
