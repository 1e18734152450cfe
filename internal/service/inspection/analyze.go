package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// Analyze runs the injected analyzer over a not-yet-analyzed inspection and
// attaches the resulting report together with its summary score in one
// update. Returns ErrConflict if the inspection already carries an
// analysis, including the case where a concurrent request attached one
// while ours was running.
func (s *Service) Analyze(ctx context.Context, inspectionID uuid.UUID) (*domain.Inspection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ins, err := s.inspections.GetByID(ctx, userID, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("get inspection: %w", err)
	}

	if ins.IsAnalyzed() {
		return nil, fmt.Errorf("inspection %s already analyzed: %w", inspectionID, domain.ErrConflict)
	}

	report, err := s.analyzer.Analyze(ctx, ins.Name, ins.Content)
	if err != nil {
		return nil, fmt.Errorf("analyze document: %w", err)
	}

	updated, err := s.inspections.AttachAnalysis(ctx, userID, inspectionID, report.Summary.Score, report)
	if err != nil {
		// The attach writes only to sentinel-scored rows, so a vanished row
		// here means another analysis got there first.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("inspection %s already analyzed: %w", inspectionID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("attach analysis: %w", err)
	}

	s.log.InfoContext(ctx, "inspection analyzed",
		slog.String("user_id", userID.String()),
		slog.String("inspection_id", inspectionID.String()),
		slog.Int("score", updated.Score),
	)

	return updated, nil
}
