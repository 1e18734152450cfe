package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

var _ refreshTokenRepo = &refreshTokenRepoMock{}

type refreshTokenRepoMock struct {
	CreateFunc          func(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc      func(ctx context.Context, id uuid.UUID) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		Create []struct {
			UserID    uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		GetByHash []struct {
			TokenHash string
		}
		RevokeByID []struct {
			ID uuid.UUID
		}
		RevokeAllByUser []struct {
			UserID uuid.UUID
		}
		DeleteExpired []struct {
			Now time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *refreshTokenRepoMock) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	if mock.CreateFunc == nil {
		panic("refreshTokenRepoMock.CreateFunc: method is nil but refreshTokenRepo.Create was just called")
	}
	callInfo := struct {
		UserID    uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, tokenHash, expiresAt)
}

func (mock *refreshTokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("refreshTokenRepoMock.GetByHashFunc: method is nil but refreshTokenRepo.GetByHash was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, struct{ TokenHash string }{TokenHash: tokenHash})
	mock.lock.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *refreshTokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeByIDFunc == nil {
		panic("refreshTokenRepoMock.RevokeByIDFunc: method is nil but refreshTokenRepo.RevokeByID was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeByID = append(mock.calls.RevokeByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.RevokeByIDFunc(ctx, id)
}

func (mock *refreshTokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("refreshTokenRepoMock.RevokeAllByUserFunc: method is nil but refreshTokenRepo.RevokeAllByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lock.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *refreshTokenRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("refreshTokenRepoMock.DeleteExpiredFunc: method is nil but refreshTokenRepo.DeleteExpired was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, struct{ Now time.Time }{Now: now})
	mock.lock.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *refreshTokenRepoMock) CreateCalls() []struct {
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *refreshTokenRepoMock) RevokeByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.RevokeByID
	mock.lock.RUnlock()
	return calls
}

func (mock *refreshTokenRepoMock) RevokeAllByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.RevokeAllByUser
	mock.lock.RUnlock()
	return calls
}

var _ resetTokenRepo = &resetTokenRepoMock{}

type resetTokenRepoMock struct {
	CreateFunc        func(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	GetByHashFunc     func(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error)
	MarkUsedFunc      func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)

	calls struct {
		Create []struct {
			UserID    uuid.UUID
			TokenHash string
			ExpiresAt time.Time
		}
		GetByHash []struct {
			TokenHash string
		}
		MarkUsed []struct {
			ID uuid.UUID
		}
		DeleteExpired []struct {
			Now time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *resetTokenRepoMock) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	if mock.CreateFunc == nil {
		panic("resetTokenRepoMock.CreateFunc: method is nil but resetTokenRepo.Create was just called")
	}
	callInfo := struct {
		UserID    uuid.UUID
		TokenHash string
		ExpiresAt time.Time
	}{UserID: userID, TokenHash: tokenHash, ExpiresAt: expiresAt}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, userID, tokenHash, expiresAt)
}

func (mock *resetTokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.PasswordResetToken, error) {
	if mock.GetByHashFunc == nil {
		panic("resetTokenRepoMock.GetByHashFunc: method is nil but resetTokenRepo.GetByHash was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, struct{ TokenHash string }{TokenHash: tokenHash})
	mock.lock.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *resetTokenRepoMock) MarkUsed(ctx context.Context, id uuid.UUID) error {
	if mock.MarkUsedFunc == nil {
		panic("resetTokenRepoMock.MarkUsedFunc: method is nil but resetTokenRepo.MarkUsed was just called")
	}
	mock.lock.Lock()
	mock.calls.MarkUsed = append(mock.calls.MarkUsed, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.MarkUsedFunc(ctx, id)
}

func (mock *resetTokenRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("resetTokenRepoMock.DeleteExpiredFunc: method is nil but resetTokenRepo.DeleteExpired was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, struct{ Now time.Time }{Now: now})
	mock.lock.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *resetTokenRepoMock) CreateCalls() []struct {
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *resetTokenRepoMock) MarkUsedCalls() []struct {
	ID uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.MarkUsed
	mock.lock.RUnlock()
	return calls
}
