package ports

import (
	"context"

	"github.com/nlog/notes-system/internal/core/domain"
)

type NoteService interface {
	Create(ctx context.Context, owner string, fields map[string]any) (string, error)
	List(ctx context.Context, owner string) ([]domain.Note, error)
	Update(ctx context.Context, id, owner string, fields map[string]any) error
	Delete(ctx context.Context, id, owner string) error
}
