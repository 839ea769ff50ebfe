// Package postgres provides PostgreSQL implementations of repositories.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notehub/internal/notehub/domain/entities"
	"notehub/internal/notehub/ports/repositories"
	"notehub/pkg/logger"
)

// DB - минимальный интерфейс пула соединений, необходимый репозиторию.
// Ему удовлетворяют *pgxpool.Pool и pgxmock.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	db DB
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(db DB) repositories.NoteRepository {
	return &NoteRepository{db: db}
}

// stampNow - единственная точка назначения временных меток записи.
// Метки хранятся в UTC и усекаются до миллисекунд.
func stampNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Create сохраняет новую заметку, назначая ей ID и Created.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("partyID", note.PartyID))

	note.ID = uuid.NewString()
	note.Created = stampNow()

	_, err := r.db.Exec(ctx,
		`INSERT INTO note (id, party_id, subject, body, created_by, created) VALUES ($1, $2, $3, $4, $5, $6)`,
		note.ID, note.PartyID, note.Subject, note.Body, note.CreatedBy, note.Created,
	)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return "", fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return note.ID, nil
}

// GetByID получает заметку по ID. Для отсутствующей заметки возвращается nil.
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.String("noteID", id))

	var note entities.Note
	err := r.db.QueryRow(ctx,
		`SELECT id, party_id, subject, body, created_by, modified_by, created, modified
         FROM note
         WHERE id = $1`,
		id,
	).Scan(&note.ID, &note.PartyID, &note.Subject, &note.Body, &note.CreatedBy, &note.ModifiedBy, &note.Created, &note.Modified)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByPartyID получает все заметки стороны в порядке возрастания Created.
func (r *NoteRepository) ListByPartyID(ctx context.Context, partyID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByPartyID"))
	log.Debug(ctx, "listing notes", zap.String("partyID", partyID))

	rows, err := r.db.Query(ctx,
		`SELECT id, party_id, subject, body, created_by, modified_by, created, modified
         FROM note
         WHERE party_id = $1
         ORDER BY created`,
		partyID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.PartyID, &note.Subject, &note.Body, &note.CreatedBy, &note.ModifiedBy, &note.Created, &note.Modified)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// ExistsByID сообщает, существует ли заметка с указанным ID.
func (r *NoteRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ExistsByID"))

	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM note WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		log.Error(ctx, "failed to check note existence", zap.Error(err))
		return false, fmt.Errorf("failed to check note existence: %w", err)
	}

	return exists, nil
}

// Update сохраняет изменённые поля заметки, назначая Modified, и возвращает
// сохранённое состояние. Для исчезнувшей заметки возвращается nil.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	modified := stampNow()

	var persisted entities.Note
	err := r.db.QueryRow(ctx,
		`UPDATE note
         SET subject = $1, body = $2, modified_by = $3, modified = $4
         WHERE id = $5
         RETURNING id, party_id, subject, body, created_by, modified_by, created, modified`,
		note.Subject, note.Body, note.ModifiedBy, modified, note.ID,
	).Scan(&persisted.ID, &persisted.PartyID, &persisted.Subject, &persisted.Body, &persisted.CreatedBy, &persisted.ModifiedBy, &persisted.Created, &persisted.Modified)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", note.ID))
			return nil, nil
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &persisted, nil
}

// Delete безвозвратно удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", id))

	if _, err := r.db.Exec(ctx, `DELETE FROM note WHERE id = $1`, id); err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
