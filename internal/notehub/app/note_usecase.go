// Package app implements application business logic for the notehub service.
package app

import (
	"context"
	"fmt"

	"notehub/internal/notehub/app/dto"
	"notehub/internal/notehub/app/mapper"
	"notehub/internal/notehub/ports/repositories"
)

// errNoteNotFoundTemplate - шаблон сообщения об отсутствующей заметке.
// Текст является частью контракта API и не должен меняться.
const errNoteNotFoundTemplate = "Note not found for id: %s"

// NotFoundError означает, что заметка с указанным ID не существует.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(errNoteNotFoundTemplate, e.ID)
}

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
	}
}

// CreateNote создает новую заметку и возвращает назначенный хранилищем ID.
func (uc *NoteUseCase) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (string, error) {
	noteID, err := uc.noteRepo.Create(ctx, mapper.ToEntity(req))
	if err != nil {
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	return noteID, nil
}

// UpdateNote обновляет существующую заметку и возвращает сохранённое
// состояние, включая назначенный хранилищем Modified.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*dto.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, &NotFoundError{ID: id}
	}

	persisted, err := uc.noteRepo.Update(ctx, mapper.ApplyUpdate(note, req))
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	// Заметка могла быть удалена между чтением и записью.
	if persisted == nil {
		return nil, &NotFoundError{ID: id}
	}

	return mapper.ToNote(persisted), nil
}

// GetNote возвращает заметку по ID.
func (uc *NoteUseCase) GetNote(ctx context.Context, id string) (*dto.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, &NotFoundError{ID: id}
	}

	return mapper.ToNote(note), nil
}

// ListNotesByParty возвращает все заметки стороны в порядке возрастания
// времени создания. Отсутствие заметок - пустой список, не ошибка.
func (uc *NoteUseCase) ListNotesByParty(ctx context.Context, partyID string) ([]*dto.Note, error) {
	notes, err := uc.noteRepo.ListByPartyID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return mapper.ToNotes(notes), nil
}

// DeleteNote безвозвратно удаляет заметку.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id string) error {
	exists, err := uc.noteRepo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check note existence: %w", err)
	}
	if !exists {
		return &NotFoundError{ID: id}
	}

	if err := uc.noteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
