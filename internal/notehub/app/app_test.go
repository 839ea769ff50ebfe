package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notehub/internal/notehub/app"
	"notehub/internal/notehub/app/dto"
	"notehub/internal/notehub/domain/entities"
)

var errDatabaseOperation = errors.New("database error")

const (
	testNoteID  = "f0e985b4-b161-4b8f-b52e-0e9e6ee29d1b"
	testPartyID = "81471222-5798-11e9-ae24-57fa13b361e1"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (string, error) {
	args := m.Called(ctx, note)
	return args.String(0), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, id string) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByPartyID(ctx context.Context, partyID string) ([]*entities.Note, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func storedNote() *entities.Note {
	return &entities.Note{
		ID:        testNoteID,
		PartyID:   testPartyID,
		Subject:   "Stored subject",
		Body:      "Stored body",
		CreatedBy: "John Doe",
		Created:   time.Date(2024, 5, 17, 10, 30, 0, 123000000, time.UTC),
	}
}

func TestNewNoteUseCase(t *testing.T) {
	mockRepo := new(mockNoteRepository)

	useCase := app.NewNoteUseCase(mockRepo)

	assert.NotNil(t, useCase, "NewNoteUseCase should return a non-nil object")
}

func TestCreateNote(t *testing.T) {
	ctx := context.Background()

	req := &dto.CreateNoteRequest{
		PartyID:   testPartyID,
		Subject:   "Test subject",
		Body:      "Test body",
		CreatedBy: "John Doe",
	}

	t.Run("successful creation returns the assigned id", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(note *entities.Note) bool {
			return note.PartyID == req.PartyID &&
				note.Subject == req.Subject &&
				note.Body == req.Body &&
				note.CreatedBy == req.CreatedBy &&
				note.ID == "" &&
				note.Created.IsZero()
		})).Return(testNoteID, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		noteID, err := useCase.CreateNote(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, testNoteID, noteID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("Create", ctx, mock.Anything).Return("", errDatabaseOperation)

		useCase := app.NewNoteUseCase(mockRepo)
		noteID, err := useCase.CreateNote(ctx, req)

		require.Error(t, err)
		assert.Empty(t, noteID)
		assert.ErrorIs(t, err, errDatabaseOperation)
	})
}

func TestGetNote(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored note", func(t *testing.T) {
		stored := storedNote()
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", ctx, testNoteID).Return(stored, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.GetNote(ctx, testNoteID)

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, stored.ID, note.ID)
		assert.Equal(t, stored.PartyID, note.PartyID)
		assert.Equal(t, stored.Subject, note.Subject)
		assert.Equal(t, stored.Body, note.Body)
		assert.Equal(t, stored.CreatedBy, note.CreatedBy)
		assert.Nil(t, note.Modified)
		assert.Nil(t, note.ModifiedBy)
	})

	t.Run("missing note yields NotFoundError with the id in the message", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", ctx, testNoteID).Return(nil, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.GetNote(ctx, testNoteID)

		require.Error(t, err)
		assert.Nil(t, note)

		var notFound *app.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Note not found for id: "+testNoteID, err.Error())
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", ctx, testNoteID).Return(nil, errDatabaseOperation)

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.GetNote(ctx, testNoteID)

		require.Error(t, err)
		assert.Nil(t, note)
		assert.ErrorIs(t, err, errDatabaseOperation)
	})
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()

	req := &dto.UpdateNoteRequest{
		Subject:    "New subject",
		Body:       "New body",
		ModifiedBy: "Jane Doe",
	}

	t.Run("returns the persisted state with a fresh modified timestamp", func(t *testing.T) {
		stored := storedNote()
		modified := stored.Created.Add(time.Hour)
		modifiedBy := req.ModifiedBy
		persisted := &entities.Note{
			ID:         stored.ID,
			PartyID:    stored.PartyID,
			Subject:    req.Subject,
			Body:       req.Body,
			CreatedBy:  stored.CreatedBy,
			ModifiedBy: &modifiedBy,
			Created:    stored.Created,
			Modified:   &modified,
		}

		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", ctx, testNoteID).Return(stored, nil)
		mockRepo.On("Update", ctx, mock.MatchedBy(func(note *entities.Note) bool {
			return note.ID == testNoteID &&
				note.Subject == req.Subject &&
				note.Body == req.Body &&
				note.ModifiedBy != nil && *note.ModifiedBy == req.ModifiedBy &&
				note.PartyID == stored.PartyID &&
				note.CreatedBy == stored.CreatedBy
		})).Return(persisted, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.UpdateNote(ctx, testNoteID, req)

		require.NoError(t, err)
		require.NotNil(t, note)
		assert.Equal(t, req.Subject, note.Subject)
		assert.Equal(t, req.Body, note.Body)
		require.NotNil(t, note.Modified)
		assert.Equal(t, modified, *note.Modified)
		require.NotNil(t, note.ModifiedBy)
		assert.Equal(t, req.ModifiedBy, *note.ModifiedBy)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing note yields NotFoundError", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", ctx, testNoteID).Return(nil, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.UpdateNote(ctx, testNoteID, req)

		require.Error(t, err)
		assert.Nil(t, note)

		var notFound *app.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Note not found for id: "+testNoteID, err.Error())
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("note deleted between read and write yields NotFoundError", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", ctx, testNoteID).Return(storedNote(), nil)
		mockRepo.On("Update", ctx, mock.Anything).Return(nil, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.UpdateNote(ctx, testNoteID, req)

		require.Error(t, err)
		assert.Nil(t, note)

		var notFound *app.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("GetByID", ctx, testNoteID).Return(storedNote(), nil)
		mockRepo.On("Update", ctx, mock.Anything).Return(nil, errDatabaseOperation)

		useCase := app.NewNoteUseCase(mockRepo)
		note, err := useCase.UpdateNote(ctx, testNoteID, req)

		require.Error(t, err)
		assert.Nil(t, note)
		assert.ErrorIs(t, err, errDatabaseOperation)
	})
}

func TestListNotesByParty(t *testing.T) {
	ctx := context.Background()

	t.Run("returns notes in repository order", func(t *testing.T) {
		first := storedNote()
		second := storedNote()
		second.ID = "0b1f0b86-6a41-4f9e-9f4e-cf0c2c9b8a11"
		second.Created = first.Created.Add(time.Minute)

		mockRepo := new(mockNoteRepository)
		mockRepo.On("ListByPartyID", ctx, testPartyID).Return([]*entities.Note{first, second}, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotesByParty(ctx, testPartyID)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, first.ID, notes[0].ID)
		assert.Equal(t, second.ID, notes[1].ID)
	})

	t.Run("party without notes yields an empty list, not an error", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ListByPartyID", ctx, testPartyID).Return([]*entities.Note{}, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotesByParty(ctx, testPartyID)

		require.NoError(t, err)
		require.NotNil(t, notes)
		assert.Empty(t, notes)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ListByPartyID", ctx, testPartyID).Return(nil, errDatabaseOperation)

		useCase := app.NewNoteUseCase(mockRepo)
		notes, err := useCase.ListNotesByParty(ctx, testPartyID)

		require.Error(t, err)
		assert.Nil(t, notes)
		assert.ErrorIs(t, err, errDatabaseOperation)
	})
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing note", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ExistsByID", ctx, testNoteID).Return(true, nil)
		mockRepo.On("Delete", ctx, testNoteID).Return(nil)

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(ctx, testNoteID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing note yields NotFoundError and no delete", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ExistsByID", ctx, testNoteID).Return(false, nil)

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(ctx, testNoteID)

		require.Error(t, err)

		var notFound *app.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Note not found for id: "+testNoteID, err.Error())
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		mockRepo := new(mockNoteRepository)
		mockRepo.On("ExistsByID", ctx, testNoteID).Return(true, nil)
		mockRepo.On("Delete", ctx, testNoteID).Return(errDatabaseOperation)

		useCase := app.NewNoteUseCase(mockRepo)
		err := useCase.DeleteNote(ctx, testNoteID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errDatabaseOperation)
	})
}
