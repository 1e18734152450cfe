package inspection

import (
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// CreateInput holds parameters for creating an inspection directly. Both
// shapes are accepted: a sentinel-scored inspection with no analysis data,
// or an already-analyzed one carrying its report.
type CreateInput struct {
	Name         string
	Content      string
	Score        int
	AnalysisData *domain.AnalysisReport
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	probe := domain.Inspection{Score: i.Score, AnalysisData: i.AnalysisData}
	if err := probe.CheckScoreInvariant(); err != nil {
		errs = append(errs, domain.FieldError{Field: "score", Message: "analysis data must be present exactly when score is in [0,100]"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
