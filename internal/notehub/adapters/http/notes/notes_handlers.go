// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notehub/internal/notehub/adapters/http/middleware"
	"notehub/internal/notehub/adapters/http/problem"
	"notehub/internal/notehub/app"
	"notehub/internal/notehub/app/dto"
	"notehub/internal/notehub/app/validation"
	"notehub/internal/notehub/ports/services"
	"notehub/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgRequiredBodyMissing = "required body missing"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesService services.NotesService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesService services.NotesService) *Handler {
	return &Handler{
		notesService: notesService,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
// Успешный ответ - 201 с заголовком Location и пустым телом.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if len(ctx.Body()) == 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.BadRequest(ErrMsgRequiredBodyMissing))
	}
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgRequiredBodyMissing, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, problem.BadRequest(ErrMsgRequiredBodyMissing))
	}

	if violations := validation.CreateNote(&req); len(violations) > 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.Violations(violations))
	}

	noteID, err := h.notesService.CreateNote(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, "/notes/"+noteID)
	if err := ctx.Status(fiber.StatusCreated).Send(nil); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	noteID := ctx.Params("id")
	if violations := validation.UUID("id", noteID); len(violations) > 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.Violations(violations))
	}

	note, err := h.notesService.GetNote(requestCtx, noteID)
	if err != nil {
		log.Debug(requestCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, note)
}

// ListNotes обрабатывает запрос на получение всех заметок стороны.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	partyID := ctx.Query("partyId")
	if violations := validation.UUID("partyId", partyID); len(violations) > 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.Violations(violations))
	}

	notes, err := h.notesService.ListNotesByParty(requestCtx, partyID)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, notes)
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("id")
	if violations := validation.UUID("id", noteID); len(violations) > 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.Violations(violations))
	}

	var req dto.UpdateNoteRequest
	if len(ctx.Body()) == 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.BadRequest(ErrMsgRequiredBodyMissing))
	}
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgRequiredBodyMissing, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, problem.BadRequest(ErrMsgRequiredBodyMissing))
	}

	if violations := validation.UpdateNote(&req); len(violations) > 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.Violations(violations))
	}

	note, err := h.notesService.UpdateNote(requestCtx, noteID, &req)
	if err != nil {
		log.Debug(requestCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, note)
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("id")
	if violations := validation.UUID("id", noteID); len(violations) > 0 {
		return sendJSON(ctx, fiber.StatusBadRequest, problem.Violations(violations))
	}

	if err := h.notesService.DeleteNote(requestCtx, noteID); err != nil {
		log.Debug(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError переводит ошибки бизнес-логики в HTTP-статусы.
func handleError(ctx fiber.Ctx, err error) error {
	var notFound *app.NotFoundError
	if errors.As(err, &notFound) {
		return sendJSON(ctx, fiber.StatusNotFound, problem.NotFound(notFound.Error()))
	}

	return sendJSON(ctx, fiber.StatusInternalServerError, problem.InternalServerError())
}

// sendJSON отправляет JSON-ответ с указанным статусом.
func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
