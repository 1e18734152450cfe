// Command seed-templates populates the contract template library from a
// JSON file. It upserts by template name, so re-running it is safe.
//
// Flags:
//
//	--file  path to the templates JSON file (default: ./seed/templates.json)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	templaterepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/template"
	"github.com/minhvudev/clausecheck-backend/internal/app"
	"github.com/minhvudev/clausecheck-backend/internal/config"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

type templateFile struct {
	Templates []templateEntry `json:"templates"`
}

type templateEntry struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

func main() {
	fileFlag := flag.String("file", "./seed/templates.json", "path to templates JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	data, err := os.ReadFile(*fileFlag)
	if err != nil {
		logger.Error("read templates file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var file templateFile
	if err := json.Unmarshal(data, &file); err != nil {
		logger.Error("parse templates file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := templaterepo.New(pool)

	for _, entry := range file.Templates {
		tmpl := &domain.ContractTemplate{
			ID:          uuid.New(),
			Name:        entry.Name,
			Category:    entry.Category,
			Description: entry.Description,
			Content:     entry.Content,
			CreatedAt:   time.Now(),
		}
		if err := repo.Upsert(ctx, tmpl); err != nil {
			logger.Error("upsert template",
				slog.String("name", entry.Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("template seeded", slog.String("name", entry.Name))
	}

	logger.Info("done", slog.Int("count", len(file.Templates)))
}
