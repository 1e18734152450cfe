package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/minhvudev/clausecheck-backend/internal/auth"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// RequestPasswordReset issues a single-use reset token and mails the reset
// link. To avoid leaking which emails are registered, an unknown email is
// not an error.
func (s *Service) RequestPasswordReset(ctx context.Context, input RequestPasswordResetInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return err
	}

	u, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("auth.RequestPasswordReset get user: %w", err)
	}

	raw, hash, err := s.jwt.GenerateOpaqueToken()
	if err != nil {
		return fmt.Errorf("auth.RequestPasswordReset generate token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.resetTokens.Create(ctx, u.ID, hash, expiresAt); err != nil {
		return fmt.Errorf("auth.RequestPasswordReset store token: %w", err)
	}

	resetURL := s.cfg.ResetRedirectURL + "?token=" + url.QueryEscape(raw)
	if err := s.mail.SendPasswordReset(ctx, u.Email, resetURL); err != nil {
		return fmt.Errorf("auth.RequestPasswordReset send mail: %w", err)
	}

	s.log.InfoContext(ctx, "password reset requested",
		slog.String("user_id", u.ID.String()))
	return nil
}

// ResetPassword redeems a reset token and replaces the user's password.
// All refresh tokens are revoked so existing sessions must log in again.
// Returns ErrUnauthorized for an unknown, expired or already used token.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	token, err := s.resetTokens.GetByHash(ctx, auth.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ResetPassword get token: %w", err)
	}

	if !token.IsUsable(time.Now()) {
		return domain.ErrUnauthorized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdatePassword(txCtx, token.UserID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.resetTokens.MarkUsed(txCtx, token.ID); err != nil {
			// Concurrent redemption: the other request won.
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("mark token used: %w", err)
		}
		if err := s.refreshTokens.RevokeAllByUser(txCtx, token.UserID); err != nil {
			return fmt.Errorf("revoke sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset completed",
		slog.String("user_id", token.UserID.String()))
	return nil
}
