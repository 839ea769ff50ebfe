package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notehub/internal/notehub/app/dto"
	"notehub/internal/notehub/app/validation"
)

const validPartyID = "81471222-5798-11e9-ae24-57fa13b361e1"

func validCreateRequest() *dto.CreateNoteRequest {
	return &dto.CreateNoteRequest{
		PartyID:   validPartyID,
		Subject:   "s",
		Body:      "b",
		CreatedBy: "John Doe",
	}
}

func TestCreateNote(t *testing.T) {
	t.Run("valid request has no violations", func(t *testing.T) {
		assert.Empty(t, validation.CreateNote(validCreateRequest()))
	})

	t.Run("empty request reports every required field", func(t *testing.T) {
		violations := validation.CreateNote(&dto.CreateNoteRequest{})

		require.Len(t, violations, 4)
		assert.Equal(t, []validation.Violation{
			{Field: "body", Message: validation.MsgNotBlank},
			{Field: "createdBy", Message: validation.MsgNotBlank},
			{Field: "partyId", Message: validation.MsgNotValidUUID},
			{Field: "subject", Message: validation.MsgNotBlank},
		}, violations)
	})

	t.Run("whitespace-only fields are blank", func(t *testing.T) {
		req := validCreateRequest()
		req.Subject = "   "

		violations := validation.CreateNote(req)

		require.Len(t, violations, 1)
		assert.Equal(t, validation.Violation{Field: "subject", Message: validation.MsgNotBlank}, violations[0])
	})

	t.Run("oversized subject violates size bounds", func(t *testing.T) {
		req := validCreateRequest()
		req.Subject = strings.Repeat("a", validation.SubjectMaxLength+1)

		violations := validation.CreateNote(req)

		require.Len(t, violations, 1)
		assert.Equal(t, validation.Violation{Field: "subject", Message: "size must be between 1 and 256"}, violations[0])
	})

	t.Run("subject at the upper bound is accepted", func(t *testing.T) {
		req := validCreateRequest()
		req.Subject = strings.Repeat("a", validation.SubjectMaxLength)

		assert.Empty(t, validation.CreateNote(req))
	})

	t.Run("oversized body violates size bounds", func(t *testing.T) {
		req := validCreateRequest()
		req.Body = strings.Repeat("b", validation.BodyMaxLength+1)

		violations := validation.CreateNote(req)

		require.Len(t, violations, 1)
		assert.Equal(t, validation.Violation{Field: "body", Message: "size must be between 1 and 2048"}, violations[0])
	})

	t.Run("malformed partyId is reported", func(t *testing.T) {
		req := validCreateRequest()
		req.PartyID = "not-a-uuid"

		violations := validation.CreateNote(req)

		require.Len(t, violations, 1)
		assert.Equal(t, validation.Violation{Field: "partyId", Message: validation.MsgNotValidUUID}, violations[0])
	})
}

func TestUpdateNote(t *testing.T) {
	t.Run("valid request has no violations", func(t *testing.T) {
		req := &dto.UpdateNoteRequest{
			Subject:    "s",
			Body:       "b",
			ModifiedBy: "Jane Doe",
		}

		assert.Empty(t, validation.UpdateNote(req))
	})

	t.Run("empty request reports every required field", func(t *testing.T) {
		violations := validation.UpdateNote(&dto.UpdateNoteRequest{})

		require.Len(t, violations, 3)
		assert.Equal(t, []validation.Violation{
			{Field: "body", Message: validation.MsgNotBlank},
			{Field: "modifiedBy", Message: validation.MsgNotBlank},
			{Field: "subject", Message: validation.MsgNotBlank},
		}, violations)
	})

	t.Run("oversized fields violate size bounds", func(t *testing.T) {
		req := &dto.UpdateNoteRequest{
			Subject:    strings.Repeat("a", validation.SubjectMaxLength+1),
			Body:       strings.Repeat("b", validation.BodyMaxLength+1),
			ModifiedBy: "Jane Doe",
		}

		violations := validation.UpdateNote(req)

		require.Len(t, violations, 2)
		assert.Equal(t, []validation.Violation{
			{Field: "body", Message: "size must be between 1 and 2048"},
			{Field: "subject", Message: "size must be between 1 and 256"},
		}, violations)
	})
}

func TestUUID(t *testing.T) {
	t.Run("valid uuid has no violations", func(t *testing.T) {
		assert.Empty(t, validation.UUID("id", validPartyID))
	})

	t.Run("malformed value is reported with the field name", func(t *testing.T) {
		violations := validation.UUID("id", "invalid")

		require.Len(t, violations, 1)
		assert.Equal(t, validation.Violation{Field: "id", Message: validation.MsgNotValidUUID}, violations[0])
	})

	t.Run("empty value is not a valid uuid", func(t *testing.T) {
		violations := validation.UUID("partyId", "")

		require.Len(t, violations, 1)
		assert.Equal(t, validation.MsgNotValidUUID, violations[0].Message)
	})
}
