package ports

import (
	"context"

	"github.com/nlog/notes-system/internal/core/domain"
)

// NoteRepository defines the interface for note persistence. Every mutating
// or deleting operation filters by id AND owner; matching by id alone would
// let one user touch another user's notes.
type NoteRepository interface {
	// Insert stores a new note with the given owner stamped onto it and
	// returns the store-assigned id.
	Insert(ctx context.Context, owner string, fields map[string]any) (string, error)

	// FindByOwner returns all notes belonging to owner, in natural order.
	FindByOwner(ctx context.Context, owner string) ([]domain.Note, error)

	// Update applies fields to the note whose id and owner both match.
	// Reports whether any document matched.
	Update(ctx context.Context, id, owner string, fields map[string]any) (bool, error)

	// Delete removes the note whose id and owner both match. Reports
	// whether a document was deleted.
	Delete(ctx context.Context, id, owner string) (bool, error)
}
