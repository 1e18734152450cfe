package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContractTemplate is an immutable shared starting document from the
// template library. Templates are seeded, never user-owned, and drafts
// keep only a reference to the template they were instantiated from.
type ContractTemplate struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Description string
	Content     string
	CreatedAt   time.Time
}
