package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/internal/service/inspection"
)

// inspectionService defines the minimal interface needed by InspectionHandler.
type inspectionService interface {
	List(ctx context.Context) ([]domain.Inspection, error)
	View(ctx context.Context, inspectionID uuid.UUID) (*domain.Inspection, error)
	Create(ctx context.Context, input inspection.CreateInput) (*domain.Inspection, error)
	Delete(ctx context.Context, inspectionID uuid.UUID) error
	Analyze(ctx context.Context, inspectionID uuid.UUID) (*domain.Inspection, error)
}

// InspectionHandler serves the inspection endpoints.
type InspectionHandler struct {
	svc inspectionService
	log *slog.Logger
}

// NewInspectionHandler creates an InspectionHandler.
func NewInspectionHandler(svc inspectionService, logger *slog.Logger) *InspectionHandler {
	return &InspectionHandler{svc: svc, log: logger.With("handler", "inspection")}
}

type createInspectionRequest struct {
	Name         string                 `json:"name"`
	Content      string                 `json:"content"`
	Score        *int                   `json:"score"`
	AnalysisData *domain.AnalysisReport `json:"analysisData"`
}

type inspectionResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Content      string                 `json:"content"`
	Score        int                    `json:"score"`
	CreatedAt    time.Time              `json:"createdAt"`
	AnalysisData *domain.AnalysisReport `json:"analysisData,omitempty"`
}

// List handles GET /inspections.
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	inspections, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]inspectionResponse, 0, len(inspections))
	for i := range inspections {
		resp = append(resp, toInspectionResponse(&inspections[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /inspections/{id}.
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ins, err := h.svc.View(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toInspectionResponse(ins))
}

// Create handles POST /inspections. Score defaults to the not-yet-analyzed
// sentinel when omitted.
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score := domain.ScoreUnanalyzed
	if req.Score != nil {
		score = *req.Score
	}

	ins, err := h.svc.Create(r.Context(), inspection.CreateInput{
		Name:         req.Name,
		Content:      req.Content,
		Score:        score,
		AnalysisData: req.AnalysisData,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInspectionResponse(ins))
}

// Delete handles DELETE /inspections/{id}.
func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Analyze handles POST /inspections/{id}/analyze.
func (h *InspectionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ins, err := h.svc.Analyze(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toInspectionResponse(ins))
}

func toInspectionResponse(ins *domain.Inspection) inspectionResponse {
	return inspectionResponse{
		ID:           ins.ID.String(),
		Name:         ins.Name,
		Content:      ins.Content,
		Score:        ins.Score,
		CreatedAt:    ins.CreatedAt,
		AnalysisData: ins.AnalysisData,
	}
}
