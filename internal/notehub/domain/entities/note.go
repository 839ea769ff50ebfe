// Package entities defines the domain entities for the notehub service.
package entities

import "time"

// Note представляет собой заметку, привязанную к стороне (party).
// ID и Created назначаются хранилищем при вставке, Modified и ModifiedBy
// остаются пустыми до первого обновления.
type Note struct {
	ID         string
	PartyID    string
	Subject    string
	Body       string
	CreatedBy  string
	ModifiedBy *string
	Created    time.Time
	Modified   *time.Time
}
