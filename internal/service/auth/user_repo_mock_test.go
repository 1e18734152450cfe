package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc          func(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
	GetPasswordHashFunc func(ctx context.Context, id uuid.UUID) (string, error)
	UpdatePasswordFunc  func(ctx context.Context, id uuid.UUID, passwordHash string) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByEmail []struct {
			Email string
		}
		Create []struct {
			U            *domain.User
			PasswordHash string
		}
		GetPasswordHash []struct {
			ID uuid.UUID
		}
		UpdatePassword []struct {
			ID           uuid.UUID
			PasswordHash string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{Email: email})
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		U            *domain.User
		PasswordHash string
	}{U: u, PasswordHash: passwordHash}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, u, passwordHash)
}

func (mock *userRepoMock) GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error) {
	if mock.GetPasswordHashFunc == nil {
		panic("userRepoMock.GetPasswordHashFunc: method is nil but userRepo.GetPasswordHash was just called")
	}
	mock.lock.Lock()
	mock.calls.GetPasswordHash = append(mock.calls.GetPasswordHash, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetPasswordHashFunc(ctx, id)
}

func (mock *userRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if mock.UpdatePasswordFunc == nil {
		panic("userRepoMock.UpdatePasswordFunc: method is nil but userRepo.UpdatePassword was just called")
	}
	callInfo := struct {
		ID           uuid.UUID
		PasswordHash string
	}{ID: id, PasswordHash: passwordHash}
	mock.lock.Lock()
	mock.calls.UpdatePassword = append(mock.calls.UpdatePassword, callInfo)
	mock.lock.Unlock()
	return mock.UpdatePasswordFunc(ctx, id, passwordHash)
}

func (mock *userRepoMock) CreateCalls() []struct {
	U            *domain.User
	PasswordHash string
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePasswordCalls() []struct {
	ID           uuid.UUID
	PasswordHash string
} {
	mock.lock.RLock()
	calls := mock.calls.UpdatePassword
	mock.lock.RUnlock()
	return calls
}
