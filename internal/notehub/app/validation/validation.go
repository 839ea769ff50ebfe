// Package validation реализует явную проверку входных данных API заметок.
// Проверки выполняются до вызова бизнес-логики и возвращают структурированный
// список нарушений (поле, сообщение).
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"notehub/internal/notehub/app/dto"
)

// Сообщения о нарушениях.
const (
	MsgNotBlank     = "must not be blank"
	MsgNotValidUUID = "not a valid UUID"
)

// Границы длины полей.
const (
	SubjectMaxLength = 256
	BodyMaxLength    = 2048
)

// Violation описывает одно нарушение ограничения поля запроса.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// sizeMessage возвращает сообщение о нарушении границ длины.
func sizeMessage(min, max int) string {
	return fmt.Sprintf("size must be between %d and %d", min, max)
}

// isBlank проверяет, что строка пуста или состоит из пробельных символов.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// UUID проверяет, что значение поля является синтаксически корректным UUID.
func UUID(field, value string) []Violation {
	if uuid.Validate(value) != nil {
		return []Violation{{Field: field, Message: MsgNotValidUUID}}
	}
	return nil
}

// text проверяет непустоту и верхнюю границу длины текстового поля.
// Для пустого значения сообщается только о непустоте.
func text(field, value string, max int) *Violation {
	if isBlank(value) {
		return &Violation{Field: field, Message: MsgNotBlank}
	}
	if utf8.RuneCountInString(value) > max {
		return &Violation{Field: field, Message: sizeMessage(1, max)}
	}
	return nil
}

// CreateNote проверяет запрос на создание заметки. Нарушения
// возвращаются в алфавитном порядке полей.
func CreateNote(req *dto.CreateNoteRequest) []Violation {
	var violations []Violation

	if v := text("body", req.Body, BodyMaxLength); v != nil {
		violations = append(violations, *v)
	}
	if isBlank(req.CreatedBy) {
		violations = append(violations, Violation{Field: "createdBy", Message: MsgNotBlank})
	}
	violations = append(violations, UUID("partyId", req.PartyID)...)
	if v := text("subject", req.Subject, SubjectMaxLength); v != nil {
		violations = append(violations, *v)
	}

	return violations
}

// UpdateNote проверяет запрос на обновление заметки.
func UpdateNote(req *dto.UpdateNoteRequest) []Violation {
	var violations []Violation

	if v := text("body", req.Body, BodyMaxLength); v != nil {
		violations = append(violations, *v)
	}
	if isBlank(req.ModifiedBy) {
		violations = append(violations, Violation{Field: "modifiedBy", Message: MsgNotBlank})
	}
	if v := text("subject", req.Subject, SubjectMaxLength); v != nil {
		violations = append(violations, *v)
	}

	return violations
}
