package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/internal/service/draft"
)

// draftService defines the minimal interface needed by DraftHandler.
type draftService interface {
	List(ctx context.Context) ([]domain.Draft, error)
	Get(ctx context.Context, draftID uuid.UUID) (*domain.Draft, error)
	CreateFromTemplate(ctx context.Context, input draft.CreateFromTemplateInput) (*domain.Draft, error)
	CreateBlank(ctx context.Context, input draft.CreateBlankInput) (*domain.Draft, error)
	Save(ctx context.Context, input draft.SaveInput) (*domain.Draft, error)
	Delete(ctx context.Context, draftID uuid.UUID) error
	Promote(ctx context.Context, input draft.PromoteInput) (*domain.Inspection, error)
}

// DraftHandler serves the draft endpoints.
type DraftHandler struct {
	svc draftService
	log *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc draftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, log: logger.With("handler", "draft")}
}

type createDraftRequest struct {
	TemplateID *uuid.UUID `json:"templateId"`
	Name       string     `json:"name"`
}

type saveDraftRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type promoteDraftRequest struct {
	Name      string `json:"name"`
	Content   string `json:"content"`
	KeepDraft bool   `json:"keepDraft"`
}

type draftResponse struct {
	ID                 string    `json:"id"`
	OriginalTemplateID *string   `json:"originalTemplateId,omitempty"`
	Name               string    `json:"name"`
	Content            string    `json:"content"`
	LastSaved          time.Time `json:"lastSaved"`
}

// List handles GET /drafts.
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]draftResponse, 0, len(drafts))
	for i := range drafts {
		resp = append(resp, toDraftResponse(&drafts[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /drafts/{id}.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// Create handles POST /drafts. With templateId the draft starts from a
// library template, without it the draft starts blank.
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		d   *domain.Draft
		err error
	)
	if req.TemplateID != nil {
		d, err = h.svc.CreateFromTemplate(r.Context(), draft.CreateFromTemplateInput{TemplateID: *req.TemplateID})
	} else {
		d, err = h.svc.CreateBlank(r.Context(), draft.CreateBlankInput{Name: req.Name})
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDraftResponse(d))
}

// Save handles PUT /drafts/{id}.
func (h *DraftHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req saveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.Save(r.Context(), draft.SaveInput{
		DraftID: id,
		Name:    req.Name,
		Content: req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// Delete handles DELETE /drafts/{id}. Always 204: deleting an absent draft
// ends in the same state.
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Promote handles POST /drafts/{id}/promote.
func (h *DraftHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req promoteDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ins, err := h.svc.Promote(r.Context(), draft.PromoteInput{
		DraftID:   id,
		Name:      req.Name,
		Content:   req.Content,
		KeepDraft: req.KeepDraft,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInspectionResponse(ins))
}

func toDraftResponse(d *domain.Draft) draftResponse {
	resp := draftResponse{
		ID:        d.ID.String(),
		Name:      d.Name,
		Content:   d.Content,
		LastSaved: d.LastSaved,
	}
	if d.OriginalTemplateID != nil {
		s := d.OriginalTemplateID.String()
		resp.OriginalTemplateID = &s
	}
	return resp
}
