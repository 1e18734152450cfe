package domain

import (
	"time"

	"github.com/google/uuid"
)

// Draft is an in-progress, freely editable contract document, optionally
// seeded from a library template. OriginalTemplateID is a reference only —
// the library template is immutable shared data, never owned by the user.
type Draft struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	OriginalTemplateID *uuid.UUID
	Name               string
	Content            string
	LastSaved          time.Time
}
