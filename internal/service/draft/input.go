package draft

import (
	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// CreateFromTemplateInput holds parameters for creating a draft from a
// library template.
type CreateFromTemplateInput struct {
	TemplateID uuid.UUID
}

// Validate validates the create-from-template input.
func (i CreateFromTemplateInput) Validate() error {
	if i.TemplateID == uuid.Nil {
		return domain.NewValidationError("template_id", "required")
	}
	return nil
}

// CreateBlankInput holds parameters for creating an empty draft.
type CreateBlankInput struct {
	Name string
}

// Validate validates the create-blank input.
func (i CreateBlankInput) Validate() error {
	if len(i.Name) > 255 {
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

// SaveInput holds parameters for saving a draft. Name may be empty and is
// stored literally.
type SaveInput struct {
	DraftID uuid.UUID
	Name    string
	Content string
}

// Validate validates the save input.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PromoteInput holds parameters for promoting a draft to an inspection.
// Name and Content are taken from the caller, not from the stored draft:
// the editor may hold changes newer than the last save.
type PromoteInput struct {
	DraftID   uuid.UUID
	Name      string
	Content   string
	KeepDraft bool
}

// Validate validates the promote input.
func (i PromoteInput) Validate() error {
	var errs []domain.FieldError

	if i.DraftID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "draft_id", Message: "required"})
	}
	if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
