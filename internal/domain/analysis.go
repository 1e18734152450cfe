package domain

// AnalysisReport is the structured clause-risk report produced by an
// analyzer. The lifecycle managers store and return it verbatim; the only
// field they ever read is Summary.Score.
type AnalysisReport struct {
	Contract AnalyzedContract `json:"contract"`
	Summary  AnalysisSummary  `json:"summary"`
}

// AnalyzedContract carries the per-clause findings.
type AnalyzedContract struct {
	Title       string           `json:"title"`
	Clauses     []AnalyzedClause `json:"clauses"`
	FullContent string           `json:"fullContent"`
}

// AnalyzedClause is a single clause with its risk classification.
type AnalyzedClause struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Risk       RiskLevel `json:"risk"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// AnalysisSummary is the document-level verdict.
type AnalysisSummary struct {
	Score       int         `json:"score"`
	Status      string      `json:"status"`
	Description string      `json:"description"`
	Risks       []RiskCount `json:"risks"`
}

// RiskCount is the number of clauses at a given risk level.
type RiskCount struct {
	Level RiskLevel `json:"level"`
	Count int       `json:"count"`
}

// Validate checks the parts of a report the managers rely on. Clause data
// is opaque and passes through unchecked.
func (r *AnalysisReport) Validate() error {
	if r.Summary.Score < 0 || r.Summary.Score > 100 {
		return NewValidationError("summary.score", "must be in [0,100]")
	}
	for _, c := range r.Contract.Clauses {
		if !c.Risk.IsValid() {
			return NewValidationError("clauses.risk", "unknown risk level")
		}
	}
	return nil
}
