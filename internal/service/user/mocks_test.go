package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateProfile []struct {
			ID    uuid.UUID
			Patch domain.ProfilePatch
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

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		ID    uuid.UUID
		Patch domain.ProfilePatch
	}{ID: id, Patch: patch}
	mock.lock.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lock.Unlock()
	return mock.UpdateProfileFunc(ctx, id, patch)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	ID    uuid.UUID
	Patch domain.ProfilePatch
} {
	mock.lock.RLock()
	calls := mock.calls.UpdateProfile
	mock.lock.RUnlock()
	return calls
}

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	ReplaceAllFunc func(ctx context.Context, userID uuid.UUID, drafts []domain.Draft) error

	calls struct {
		ReplaceAll []struct {
			UserID uuid.UUID
			Drafts []domain.Draft
		}
	}
	lock sync.RWMutex
}

func (mock *draftRepoMock) ReplaceAll(ctx context.Context, userID uuid.UUID, drafts []domain.Draft) error {
	if mock.ReplaceAllFunc == nil {
		panic("draftRepoMock.ReplaceAllFunc: method is nil but draftRepo.ReplaceAll was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Drafts []domain.Draft
	}{UserID: userID, Drafts: drafts}
	mock.lock.Lock()
	mock.calls.ReplaceAll = append(mock.calls.ReplaceAll, callInfo)
	mock.lock.Unlock()
	return mock.ReplaceAllFunc(ctx, userID, drafts)
}

func (mock *draftRepoMock) ReplaceAllCalls() []struct {
	UserID uuid.UUID
	Drafts []domain.Draft
} {
	mock.lock.RLock()
	calls := mock.calls.ReplaceAll
	mock.lock.RUnlock()
	return calls
}

var _ inspectionRepo = &inspectionRepoMock{}

type inspectionRepoMock struct {
	ReplaceAllFunc func(ctx context.Context, userID uuid.UUID, inspections []domain.Inspection) error

	calls struct {
		ReplaceAll []struct {
			UserID      uuid.UUID
			Inspections []domain.Inspection
		}
	}
	lock sync.RWMutex
}

func (mock *inspectionRepoMock) ReplaceAll(ctx context.Context, userID uuid.UUID, inspections []domain.Inspection) error {
	if mock.ReplaceAllFunc == nil {
		panic("inspectionRepoMock.ReplaceAllFunc: method is nil but inspectionRepo.ReplaceAll was just called")
	}
	callInfo := struct {
		UserID      uuid.UUID
		Inspections []domain.Inspection
	}{UserID: userID, Inspections: inspections}
	mock.lock.Lock()
	mock.calls.ReplaceAll = append(mock.calls.ReplaceAll, callInfo)
	mock.lock.Unlock()
	return mock.ReplaceAllFunc(ctx, userID, inspections)
}

func (mock *inspectionRepoMock) ReplaceAllCalls() []struct {
	UserID      uuid.UUID
	Inspections []domain.Inspection
} {
	mock.lock.RLock()
	calls := mock.calls.ReplaceAll
	mock.lock.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

// passthroughTx runs the callback directly, without a real transaction.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
