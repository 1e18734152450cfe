package inspection

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

var _ inspectionRepo = &inspectionRepoMock{}

type inspectionRepoMock struct {
	ListByUserFunc     func(ctx context.Context, userID uuid.UUID) ([]domain.Inspection, error)
	GetByIDFunc        func(ctx context.Context, userID, id uuid.UUID) (*domain.Inspection, error)
	CreateFunc         func(ctx context.Context, ins *domain.Inspection) (*domain.Inspection, error)
	DeleteFunc         func(ctx context.Context, userID, id uuid.UUID) (bool, error)
	AttachAnalysisFunc func(ctx context.Context, userID, id uuid.UUID, score int, report *domain.AnalysisReport) (*domain.Inspection, error)
	CountByUserFunc    func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Inspection *domain.Inspection
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
		AttachAnalysis []struct {
			UserID uuid.UUID
			ID     uuid.UUID
			Score  int
			Report *domain.AnalysisReport
		}
	}
	lock sync.RWMutex
}

func (mock *inspectionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Inspection, error) {
	if mock.ListByUserFunc == nil {
		panic("inspectionRepoMock.ListByUserFunc: method is nil but inspectionRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *inspectionRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Inspection, error) {
	if mock.GetByIDFunc == nil {
		panic("inspectionRepoMock.GetByIDFunc: method is nil but inspectionRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, id)
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

func (mock *inspectionRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("inspectionRepoMock.DeleteFunc: method is nil but inspectionRepo.Delete was just called")
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

func (mock *inspectionRepoMock) AttachAnalysis(ctx context.Context, userID, id uuid.UUID, score int, report *domain.AnalysisReport) (*domain.Inspection, error) {
	if mock.AttachAnalysisFunc == nil {
		panic("inspectionRepoMock.AttachAnalysisFunc: method is nil but inspectionRepo.AttachAnalysis was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
		Score  int
		Report *domain.AnalysisReport
	}{UserID: userID, ID: id, Score: score, Report: report}
	mock.lock.Lock()
	mock.calls.AttachAnalysis = append(mock.calls.AttachAnalysis, callInfo)
	mock.lock.Unlock()
	return mock.AttachAnalysisFunc(ctx, userID, id, score, report)
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

func (mock *inspectionRepoMock) AttachAnalysisCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Score  int
	Report *domain.AnalysisReport
} {
	mock.lock.RLock()
	calls := mock.calls.AttachAnalysis
	mock.lock.RUnlock()
	return calls
}

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	AnalyzeFunc func(ctx context.Context, name, content string) (*domain.AnalysisReport, error)

	calls struct {
		Analyze []struct {
			Name    string
			Content string
		}
	}
	lock sync.RWMutex
}

func (mock *analyzerMock) Analyze(ctx context.Context, name, content string) (*domain.AnalysisReport, error) {
	if mock.AnalyzeFunc == nil {
		panic("analyzerMock.AnalyzeFunc: method is nil but analyzer.Analyze was just called")
	}
	callInfo := struct {
		Name    string
		Content string
	}{Name: name, Content: content}
	mock.lock.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lock.Unlock()
	return mock.AnalyzeFunc(ctx, name, content)
}

func (mock *analyzerMock) AnalyzeCalls() []struct {
	Name    string
	Content string
} {
	mock.lock.RLock()
	calls := mock.calls.Analyze
	mock.lock.RUnlock()
	return calls
}
