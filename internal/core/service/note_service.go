package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nlog/notes-system/internal/core/domain"
	"github.com/nlog/notes-system/internal/core/ports"
)

// NoteService implements owner-scoped note CRUD. Ownership is enforced by
// the repository predicates; this layer stamps the acting identity and maps
// "nothing matched" onto the single conflated not-found error.
type NoteService struct {
	notes  ports.NoteRepository
	logger zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, logger: logger}
}

// Create inserts a note for owner. Any caller-supplied "user" or "_id" field
// is discarded; the verified identity always wins.
func (s *NoteService) Create(ctx context.Context, owner string, fields map[string]any) (string, error) {
	clean := sanitizeFields(fields)

	id, err := s.notes.Insert(ctx, owner, clean)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to create note")
		return "", err
	}

	s.logger.Info().Str("owner", owner).Str("note_id", id).Msg("note created")
	return id, nil
}

// List returns every note belonging to owner.
func (s *NoteService) List(ctx context.Context, owner string) ([]domain.Note, error) {
	notes, err := s.notes.FindByOwner(ctx, owner)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to list notes")
		return nil, err
	}
	return notes, nil
}

// Update applies fields to the note only if both id and owner match. Zero
// matches means the note does not exist or belongs to someone else; the two
// cases are deliberately indistinguishable.
func (s *NoteService) Update(ctx context.Context, id, owner string, fields map[string]any) error {
	clean := sanitizeFields(fields)

	matched, err := s.notes.Update(ctx, id, owner, clean)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Str("note_id", id).Msg("failed to update note")
		return err
	}
	if !matched {
		return domain.ErrNoteNotOwned
	}
	return nil
}

// Delete removes the note only if both id and owner match, with the same
// conflated not-found semantics as Update.
func (s *NoteService) Delete(ctx context.Context, id, owner string) error {
	deleted, err := s.notes.Delete(ctx, id, owner)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Str("note_id", id).Msg("failed to delete note")
		return err
	}
	if !deleted {
		return domain.ErrNoteNotOwned
	}
	return nil
}

// sanitizeFields copies fields without the reserved keys. The owner stamp is
// applied at the repository and must not be overridden, and "_id" is always
// store-assigned.
func sanitizeFields(fields map[string]any) map[string]any {
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "user" || k == "_id" {
			continue
		}
		clean[k] = v
	}
	return clean
}
