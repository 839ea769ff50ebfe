// Package services определяет контракты прикладных сервисов для HTTP-слоя.
package services

import (
	"context"

	"notehub/internal/notehub/app/dto"
)

// NotesService определяет операции сервиса заметок.
type NotesService interface {
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (string, error)
	UpdateNote(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*dto.Note, error)
	GetNote(ctx context.Context, id string) (*dto.Note, error)
	ListNotesByParty(ctx context.Context, partyID string) ([]*dto.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
