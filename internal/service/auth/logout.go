package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens for the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.refreshTokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CleanupExpiredTokens removes expired refresh and password reset tokens.
// Returns the total number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	now := time.Now()

	refresh, err := s.refreshTokens.DeleteExpired(ctx, now)
	if err != nil {
		s.log.ErrorContext(ctx, "refresh token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens refresh: %w", err)
	}

	reset, err := s.resetTokens.DeleteExpired(ctx, now)
	if err != nil {
		s.log.ErrorContext(ctx, "reset token cleanup failed", slog.String("error", err.Error()))
		return refresh, fmt.Errorf("auth.CleanupExpiredTokens reset: %w", err)
	}

	total := refresh + reset
	if total > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens",
			slog.Int64("refresh", refresh),
			slog.Int64("reset", reset))
	}

	return total, nil
}
