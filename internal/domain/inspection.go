package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScoreUnanalyzed marks an inspection that has not been analyzed yet.
const ScoreUnanalyzed = -1

// Inspection is a saved contract record. Once created its content is
// frozen; the only permitted mutations are attaching an analysis to a
// not-yet-analyzed record and deletion.
type Inspection struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Content      string
	Score        int
	CreatedAt    time.Time
	AnalysisData *AnalysisReport
}

// IsAnalyzed reports whether an analysis has been attached.
func (i *Inspection) IsAnalyzed() bool {
	return i.Score >= 0
}

// CheckScoreInvariant verifies that AnalysisData is present if and only if
// Score is in [0,100]. Every write path must pass this before persisting.
func (i *Inspection) CheckScoreInvariant() error {
	if i.Score < ScoreUnanalyzed || i.Score > 100 {
		return NewValidationError("score", "must be -1 or in [0,100]")
	}
	if i.Score >= 0 && i.AnalysisData == nil {
		return NewValidationError("analysis_data", "required when score is set")
	}
	if i.Score == ScoreUnanalyzed && i.AnalysisData != nil {
		return NewValidationError("analysis_data", "must be absent for unanalyzed inspections")
	}
	return nil
}
