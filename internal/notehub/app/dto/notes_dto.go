// Package dto содержит транспортные структуры HTTP API заметок.
package dto

import (
	"time"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	PartyID   string `json:"partyId"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedBy string `json:"createdBy"`
}

// UpdateNoteRequest содержит данные для обновления заметки.
// PartyID и CreatedBy неизменяемы и в запросе отсутствуют.
type UpdateNoteRequest struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	ModifiedBy string `json:"modifiedBy"`
}

// Note представляет заметку в ответе API. Поля без значения
// не сериализуются.
type Note struct {
	ID         string     `json:"id"`
	PartyID    string     `json:"partyId"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	CreatedBy  string     `json:"createdBy"`
	ModifiedBy *string    `json:"modifiedBy,omitempty"`
	Created    time.Time  `json:"created"`
	Modified   *time.Time `json:"modified,omitempty"`
}
