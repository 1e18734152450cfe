package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/minhvudev/clausecheck-backend/internal/domain"
)

// UpdateProfileInput holds parameters for a profile update. All fields are
// optional: nil = leave unchanged, a pointer to the zero value clears the
// field. Drafts and Inspections, when present, replace the user's whole
// collection (last write wins).
type UpdateProfileInput struct {
	Username  *string
	FullName  *string
	AvatarURL *string
	Birthdate *time.Time
	Gender    *domain.Gender
	Phone     *string

	Drafts      *[]domain.Draft
	Inspections *[]domain.Inspection
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil {
		if *i.Username == "" {
			errs = append(errs, domain.FieldError{Field: "username", Message: "cannot be empty"})
		} else if len(*i.Username) > 64 {
			errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
		}
	}

	if i.FullName != nil && len(*i.FullName) > 255 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}

	if i.AvatarURL != nil && len(*i.AvatarURL) > 512 {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}

	// Empty gender clears the field, anything else must be a known value.
	if i.Gender != nil && *i.Gender != "" && !i.Gender.IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be MALE, FEMALE or OTHER"})
	}

	if i.Phone != nil && len(*i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if i.Drafts != nil {
		for _, d := range *i.Drafts {
			if d.ID == uuid.Nil {
				errs = append(errs, domain.FieldError{Field: "drafts", Message: "missing id"})
				break
			}
			if len(d.Name) > 255 {
				errs = append(errs, domain.FieldError{Field: "drafts", Message: "name too long"})
				break
			}
		}
	}

	if i.Inspections != nil {
		for _, ins := range *i.Inspections {
			if ins.ID == uuid.Nil {
				errs = append(errs, domain.FieldError{Field: "inspections", Message: "missing id"})
				break
			}
			if err := ins.CheckScoreInvariant(); err != nil {
				errs = append(errs, domain.FieldError{Field: "inspections", Message: "analysis data must be present exactly when score is set"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
