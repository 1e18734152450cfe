// Package staticanalyzer implements a deterministic contract analyzer.
// It returns a fixed verdict regardless of input and is the default when no
// Anthropic API key is configured, and the analyzer used in tests.
package staticanalyzer

import (
	"context"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// Analyzer always produces the same report for any document.
type Analyzer struct{}

// New creates a new static analyzer.
func New() *Analyzer { return &Analyzer{} }

// Analyze returns a fixed "fairly safe" verdict: score 72, one dangerous
// clause, one warning, twelve clean clauses.
func (a *Analyzer) Analyze(ctx context.Context, name, content string) (*domain.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &domain.AnalysisReport{
		Contract: domain.AnalyzedContract{
			Title:       name,
			FullContent: content,
			Clauses: []domain.AnalyzedClause{
				{
					ID:         "3",
					Title:      "Điều 3: Phạt vi phạm",
					Content:    "Bên vi phạm chịu phạt 20% giá trị hợp đồng.",
					Risk:       domain.RiskDanger,
					Suggestion: "Điều 3 quy định mức phạt 20% là trái với Luật Thương mại. Sửa thành 8%.",
				},
				{
					ID:         "7",
					Title:      "Điều 7: Đơn phương chấm dứt",
					Content:    "Một bên có quyền đơn phương chấm dứt hợp đồng mà không cần báo trước.",
					Risk:       domain.RiskCaution,
					Suggestion: "Bổ sung thời hạn báo trước tối thiểu 30 ngày.",
				},
			},
		},
		Summary: domain.AnalysisSummary{
			Score:       72,
			Status:      "Khá an toàn",
			Description: "Hợp đồng đạt chuẩn cơ bản.",
			Risks: []domain.RiskCount{
				{Level: domain.RiskDanger, Count: 1},
				{Level: domain.RiskCaution, Count: 1},
				{Level: domain.RiskSafe, Count: 12},
			},
		},
	}, nil
}
