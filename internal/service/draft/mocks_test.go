package draft

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	ListByUserFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.Draft, error)
	GetByIDFunc     func(ctx context.Context, userID, id uuid.UUID) (*domain.Draft, error)
	CreateFunc      func(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	UpdateFunc      func(ctx context.Context, userID, id uuid.UUID, name, content string, lastSaved time.Time) (*domain.Draft, error)
	DeleteFunc      func(ctx context.Context, userID, id uuid.UUID) (bool, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Draft *domain.Draft
		}
		Update []struct {
			UserID  uuid.UUID
			ID      uuid.UUID
			Name    string
			Content string
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *draftRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Draft, error) {
	if mock.ListByUserFunc == nil {
		panic("draftRepoMock.ListByUserFunc: method is nil but draftRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *draftRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Draft, error) {
	if mock.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but draftRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *draftRepoMock) Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error) {
	if mock.CreateFunc == nil {
		panic("draftRepoMock.CreateFunc: method is nil but draftRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Draft *domain.Draft }{Draft: d})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *draftRepoMock) Update(ctx context.Context, userID, id uuid.UUID, name, content string, lastSaved time.Time) (*domain.Draft, error) {
	if mock.UpdateFunc == nil {
		panic("draftRepoMock.UpdateFunc: method is nil but draftRepo.Update was just called")
	}
	callInfo := struct {
		UserID  uuid.UUID
		ID      uuid.UUID
		Name    string
		Content string
	}{UserID: userID, ID: id, Name: name, Content: content}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, userID, id, name, content, lastSaved)
}

func (mock *draftRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("draftRepoMock.DeleteFunc: method is nil but draftRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *draftRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("draftRepoMock.CountByUserFunc: method is nil but draftRepo.CountByUser was just called")
	}
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *draftRepoMock) CreateCalls() []struct {
	Draft *domain.Draft
} {
	mock.lock.RLock()
	calls := mock.calls.Create
	mock.lock.RUnlock()
	return calls
}

func (mock *draftRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lock.RLock()
	calls := mock.calls.Delete
	mock.lock.RUnlock()
	return calls
}

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ContractTemplate, error)
}

func (mock *templateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractTemplate, error) {
	if mock.GetByIDFunc == nil {
		panic("templateRepoMock.GetByIDFunc: method is nil but templateRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ inspectionRepo = &inspectionRepoMock{}

type inspectionRepoMock struct {
	CreateFunc      func(ctx context.Context, ins *domain.Inspection) (*domain.Inspection, error)
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Inspection *domain.Inspection
		}
	}
	lock sync.RWMutex
}

func (mock *inspectionRepoMock) Create(ctx context.Context, ins *domain.Inspection) (*domain.Inspection, error) {
	if mock.CreateFunc == nil {
		panic("inspectionRepoMock.CreateFunc: method is nil but inspectionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Inspection *domain.Inspection }{Inspection: ins})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, ins)
}

func (mock *inspectionRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("inspectionRepoMock.CountByUserFunc: method is nil but inspectionRepo.CountByUser was just called")
	}
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *inspectionRepoMock) CreateCalls() []struct {
	Inspection *domain.Inspection
} {
	mock.lock.RLock()
	calls := mock.calls.Create
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
