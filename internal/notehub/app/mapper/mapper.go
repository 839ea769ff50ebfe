// Package mapper содержит чистые преобразования между транспортными
// структурами и доменной сущностью заметки.
package mapper

import (
	"notehub/internal/notehub/app/dto"
	"notehub/internal/notehub/domain/entities"
)

// ToEntity строит новую несохраненную сущность из запроса на создание.
// ID, Created, Modified и ModifiedBy остаются пустыми - их назначает
// хранилище. Для nil-запроса возвращается nil.
func ToEntity(req *dto.CreateNoteRequest) *entities.Note {
	if req == nil {
		return nil
	}

	return &entities.Note{
		PartyID:   req.PartyID,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedBy: req.CreatedBy,
	}
}

// ApplyUpdate перезаписывает Subject, Body и ModifiedBy значениями из
// запроса на обновление; остальные поля не затрагиваются. Для nil-запроса
// сущность возвращается без изменений.
func ApplyUpdate(note *entities.Note, req *dto.UpdateNoteRequest) *entities.Note {
	if req == nil {
		return note
	}

	note.Subject = req.Subject
	note.Body = req.Body
	modifiedBy := req.ModifiedBy
	note.ModifiedBy = &modifiedBy
	return note
}

// ToNote копирует все поля сущности в структуру ответа.
// Для nil-сущности возвращается nil.
func ToNote(note *entities.Note) *dto.Note {
	if note == nil {
		return nil
	}

	return &dto.Note{
		ID:         note.ID,
		PartyID:    note.PartyID,
		Subject:    note.Subject,
		Body:       note.Body,
		CreatedBy:  note.CreatedBy,
		ModifiedBy: note.ModifiedBy,
		Created:    note.Created,
		Modified:   note.Modified,
	}
}

// ToNotes преобразует список сущностей в список ответов.
// Для nil-списка возвращается пустой список, никогда nil.
func ToNotes(notes []*entities.Note) []*dto.Note {
	result := make([]*dto.Note, 0, len(notes))
	for _, note := range notes {
		result = append(result, ToNote(note))
	}
	return result
}
