package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	draftrepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/draft"
	inspectionrepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/inspection"
	templaterepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/template"
	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/token"
	userrepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/user"
	"github.com/minhvudev/clausecheck-backend/internal/adapter/provider/claude"
	"github.com/minhvudev/clausecheck-backend/internal/adapter/provider/logmailer"
	"github.com/minhvudev/clausecheck-backend/internal/adapter/provider/staticanalyzer"
	authjwt "github.com/minhvudev/clausecheck-backend/internal/auth"
	"github.com/minhvudev/clausecheck-backend/internal/config"
	"github.com/minhvudev/clausecheck-backend/internal/domain"
	authsvc "github.com/minhvudev/clausecheck-backend/internal/service/auth"
	draftsvc "github.com/minhvudev/clausecheck-backend/internal/service/draft"
	inspectionsvc "github.com/minhvudev/clausecheck-backend/internal/service/inspection"
	templatesvc "github.com/minhvudev/clausecheck-backend/internal/service/template"
	usersvc "github.com/minhvudev/clausecheck-backend/internal/service/user"
	"github.com/minhvudev/clausecheck-backend/internal/transport/middleware"
	"github.com/minhvudev/clausecheck-backend/internal/transport/rest"
)

// analyzer abstracts the clause-risk analysis backend chosen by config.
type analyzer interface {
	Analyze(ctx context.Context, name, content string) (*domain.AnalysisReport, error)
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services, and serves HTTP until the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	drafts := draftrepo.New(pool)
	inspections := inspectionrepo.New(pool)
	templates := templaterepo.New(pool)
	refreshTokens := token.NewRefresh(pool)
	resetTokens := token.NewReset(pool)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	mailer := logmailer.New(logger)

	an, err := newAnalyzer(cfg.Analysis, logger)
	if err != nil {
		return err
	}

	authService := authsvc.NewService(logger, users, refreshTokens, resetTokens, mailer, txManager, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, drafts, inspections, txManager)
	draftService := draftsvc.NewService(logger, drafts, templates, inspections, txManager, cfg.Contracts)
	inspectionService := inspectionsvc.NewService(logger, inspections, an, cfg.Contracts)
	templateService := templatesvc.NewService(logger, templates)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:        rest.NewAuthHandler(authService, logger),
		Profile:     rest.NewProfileHandler(userService, logger),
		Drafts:      rest.NewDraftHandler(draftService, logger),
		Inspections: rest.NewInspectionHandler(inspectionService, logger),
		Templates:   rest.NewTemplateHandler(templateService, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),

		TokenValidator: authService,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		CORS:           cfg.CORS,
		RateLimit:      cfg.Server.RateLimitPerMin,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

func newAnalyzer(cfg config.AnalysisConfig, logger *slog.Logger) (analyzer, error) {
	switch cfg.Provider {
	case "static", "":
		return staticanalyzer.New(), nil
	case "claude":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("analysis provider %q requires an API key", cfg.Provider)
		}
		return claude.New(cfg.AnthropicAPIKey, cfg.Model, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown analysis provider %q", cfg.Provider)
	}
}
