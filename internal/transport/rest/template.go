package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// templateService defines the minimal interface needed by TemplateHandler.
type templateService interface {
	List(ctx context.Context) ([]domain.ContractTemplate, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.ContractTemplate, error)
}

// TemplateHandler serves the read-only template library endpoints.
type TemplateHandler struct {
	svc templateService
	log *slog.Logger
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(svc templateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: logger.With("handler", "template")}
}

type templateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// List handles GET /templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]templateResponse, 0, len(templates))
	for i := range templates {
		resp = append(resp, toTemplateResponse(&templates[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /templates/{id}.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tmpl, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTemplateResponse(tmpl))
}

func toTemplateResponse(t *domain.ContractTemplate) templateResponse {
	return templateResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Content:     t.Content,
	}
}
