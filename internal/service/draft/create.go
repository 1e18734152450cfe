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

// CreateFromTemplate creates a new draft seeded with a library template's
// content. The template itself is never modified; the draft keeps a
// back-reference in OriginalTemplateID.
func (s *Service) CreateFromTemplate(ctx context.Context, input CreateFromTemplateInput) (*domain.Draft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := s.templates.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	if err := s.checkDraftLimit(ctx, userID); err != nil {
		return nil, err
	}

	created, err := s.drafts.Create(ctx, &domain.Draft{
		ID:                 uuid.New(),
		UserID:             userID,
		OriginalTemplateID: &tmpl.ID,
		Name:               tmpl.Name,
		Content:            tmpl.Content,
		LastSaved:          time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}

	s.log.InfoContext(ctx, "draft created from template",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", created.ID.String()),
		slog.String("template_id", tmpl.ID.String()),
	)

	return created, nil
}

// CreateBlank creates an empty draft with no template reference.
func (s *Service) CreateBlank(ctx context.Context, input CreateBlankInput) (*domain.Draft, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkDraftLimit(ctx, userID); err != nil {
		return nil, err
	}

	created, err := s.drafts.Create(ctx, &domain.Draft{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      input.Name,
		Content:   "",
		LastSaved: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}

	s.log.InfoContext(ctx, "blank draft created",
		slog.String("user_id", userID.String()),
		slog.String("draft_id", created.ID.String()),
	)

	return created, nil
}

// checkDraftLimit enforces the per-user draft cap.
func (s *Service) checkDraftLimit(ctx context.Context, userID uuid.UUID) error {
	count, err := s.drafts.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("count drafts: %w", err)
	}
	if count >= s.cfg.MaxDraftsPerUser {
		return domain.NewValidationError("drafts", fmt.Sprintf("limit reached (max %d)", s.cfg.MaxDraftsPerUser))
	}
	return nil
}
