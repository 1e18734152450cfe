package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
	"github.com/minhvudev/clausecheck-backend/internal/service/user"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// ProfileHandler serves the user profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type userResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FullName  *string    `json:"fullName,omitempty"`
	AvatarURL *string    `json:"avatarUrl,omitempty"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
	Gender    *string    `json:"gender,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// updateProfileRequest mirrors UpdateProfileInput: absent fields stay
// untouched, explicit nulls are not distinguished from absent ones, so
// clearing a field means sending its empty value.
type updateProfileRequest struct {
	Username  *string    `json:"username"`
	FullName  *string    `json:"fullName"`
	AvatarURL *string    `json:"avatarUrl"`
	Birthdate *time.Time `json:"birthdate"`
	Gender    *string    `json:"gender"`
	Phone     *string    `json:"phone"`

	Drafts      *[]draftPayload      `json:"drafts"`
	Inspections *[]inspectionPayload `json:"inspections"`
}

type draftPayload struct {
	ID                 uuid.UUID  `json:"id"`
	OriginalTemplateID *uuid.UUID `json:"originalTemplateId"`
	Name               string     `json:"name"`
	Content            string     `json:"content"`
	LastSaved          time.Time  `json:"lastSaved"`
}

type inspectionPayload struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Content      string                 `json:"content"`
	Score        int                    `json:"score"`
	CreatedAt    time.Time              `json:"createdAt"`
	AnalysisData *domain.AnalysisReport `json:"analysisData,omitempty"`
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Patch handles PATCH /profile.
func (h *ProfileHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := user.UpdateProfileInput{
		Username:  req.Username,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
		Birthdate: req.Birthdate,
		Phone:     req.Phone,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		input.Gender = &g
	}
	if req.Drafts != nil {
		drafts := make([]domain.Draft, 0, len(*req.Drafts))
		for _, d := range *req.Drafts {
			drafts = append(drafts, domain.Draft{
				ID:                 d.ID,
				OriginalTemplateID: d.OriginalTemplateID,
				Name:               d.Name,
				Content:            d.Content,
				LastSaved:          d.LastSaved,
			})
		}
		input.Drafts = &drafts
	}
	if req.Inspections != nil {
		inspections := make([]domain.Inspection, 0, len(*req.Inspections))
		for _, ins := range *req.Inspections {
			inspections = append(inspections, domain.Inspection{
				ID:           ins.ID,
				Name:         ins.Name,
				Content:      ins.Content,
				Score:        ins.Score,
				CreatedAt:    ins.CreatedAt,
				AnalysisData: ins.AnalysisData,
			})
		}
		input.Inspections = &inspections
	}

	u, err := h.svc.UpdateProfile(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		Birthdate: u.Birthdate,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Gender != nil {
		g := u.Gender.String()
		resp.Gender = &g
	}
	return resp
}
