package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a fixed dummy password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	fullName := "Test User " + suffix
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Username:  "testuser-" + suffix,
		FullName:  &fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, full_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, "$2a$10$N9qo8uLOickgx2ZMRZoMye", user.FullName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedTemplate creates a contract template in the shared library.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool) domain.ContractTemplate {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	tmpl := domain.ContractTemplate{
		ID:          uuid.New(),
		Name:        "Template " + suffix,
		Category:    "Testing",
		Description: "Seeded template " + suffix,
		Content:     "ARTICLE 1. Seeded content " + suffix,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contract_templates (id, name, category, description, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		tmpl.ID, tmpl.Name, tmpl.Category, tmpl.Description, tmpl.Content, tmpl.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate insert template: %v", err)
	}

	return tmpl
}

// SeedDraft creates a draft for the given user, not linked to any template.
func SeedDraft(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Draft {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	draft := domain.Draft{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Draft " + suffix,
		Content:   "ARTICLE 1. Draft content " + suffix,
		LastSaved: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO drafts (id, user_id, name, content, last_saved)
		 VALUES ($1, $2, $3, $4, $5)`,
		draft.ID, draft.UserID, draft.Name, draft.Content, draft.LastSaved,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDraft insert draft: %v", err)
	}

	return draft
}

// SeedInspection creates a not-yet-analyzed inspection for the given user.
func SeedInspection(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Inspection {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	ins := domain.Inspection{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Inspection " + suffix,
		Content:   "ARTICLE 1. Inspection content " + suffix,
		Score:     domain.ScoreUnanalyzed,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO inspections (id, user_id, name, content, score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ins.ID, ins.UserID, ins.Name, ins.Content, ins.Score, ins.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInspection insert inspection: %v", err)
	}

	return ins
}

// SeedAnalyzedInspection creates an inspection carrying a complete analysis
// report and matching score.
func SeedAnalyzedInspection(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Inspection {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	report := domain.AnalysisReport{
		Contract: domain.AnalyzedContract{
			Title:       "Inspection " + suffix,
			FullContent: "ARTICLE 1. Inspection content " + suffix,
			Clauses: []domain.AnalyzedClause{
				{ID: "1", Title: "Article 1", Content: "Seeded clause", Risk: domain.RiskSafe},
			},
		},
		Summary: domain.AnalysisSummary{
			Score:  85,
			Status: "An toàn",
			Risks:  []domain.RiskCount{{Level: domain.RiskSafe, Count: 1}},
		},
	}

	ins := domain.Inspection{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         report.Contract.Title,
		Content:      report.Contract.FullContent,
		Score:        report.Summary.Score,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
		AnalysisData: &report,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO inspections (id, user_id, name, content, score, created_at, analysis_data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ins.ID, ins.UserID, ins.Name, ins.Content, ins.Score, ins.CreatedAt, ins.AnalysisData,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnalyzedInspection insert inspection: %v", err)
	}

	return ins
}
