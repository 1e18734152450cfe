package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return u, nil
}

// UpdateProfile applies a partial update to the authenticated user's
// profile. Scalar fields are patched independently; when the input carries
// a drafts or inspections collection, the stored collection is replaced
// wholesale. Everything runs in one transaction so a failed collection
// write never leaves a half-updated profile.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	patch := domain.ProfilePatch{
		Username:  input.Username,
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
		Birthdate: input.Birthdate,
		Phone:     input.Phone,
	}
	if input.Gender != nil {
		g := input.Gender.String()
		patch.Gender = &g
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.users.UpdateProfile(txCtx, userID, patch)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		if input.Drafts != nil {
			if err := s.drafts.ReplaceAll(txCtx, userID, *input.Drafts); err != nil {
				return fmt.Errorf("replace drafts: %w", err)
			}
		}

		if input.Inspections != nil {
			if err := s.inspections.ReplaceAll(txCtx, userID, *input.Inspections); err != nil {
				return fmt.Errorf("replace inspections: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("drafts_replaced", input.Drafts != nil),
		slog.Bool("inspections_replaced", input.Inspections != nil))

	return updated, nil
}
