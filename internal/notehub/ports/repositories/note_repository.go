// Package repositories определяет контракты хранилища заметок.
package repositories

import (
	"context"

	"notehub/internal/notehub/domain/entities"
)

// NoteRepository определяет контракт хранилища заметок. Хранилище
// отвечает за назначение ID и Created при вставке и Modified при
// обновлении.
type NoteRepository interface {
	// Create сохраняет новую заметку, назначая ей ID и Created,
	// и возвращает назначенный ID.
	Create(ctx context.Context, note *entities.Note) (string, error)

	// GetByID возвращает заметку по ID или nil, если её нет.
	GetByID(ctx context.Context, id string) (*entities.Note, error)

	// ListByPartyID возвращает все заметки стороны в порядке
	// возрастания Created. Отсутствие заметок - пустой список.
	ListByPartyID(ctx context.Context, partyID string) ([]*entities.Note, error)

	// ExistsByID сообщает, существует ли заметка с указанным ID.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Update сохраняет изменённые поля заметки, назначает Modified
	// и возвращает сохранённое состояние. Для несуществующего ID
	// возвращается nil.
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// Delete безвозвратно удаляет заметку по ID.
	Delete(ctx context.Context, id string) error
}
