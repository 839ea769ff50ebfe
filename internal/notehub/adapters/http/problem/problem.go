// Package problem определяет тела ошибок API в стиле RFC 7807.
package problem

import (
	"github.com/gofiber/fiber/v3"

	"notehub/internal/notehub/app/validation"
)

// Заголовки problem-ответов.
const (
	TitleBadRequest          = "Bad Request"
	TitleNotFound            = "Not Found"
	TitleInternalServerError = "Internal Server Error"
	TitleConstraintViolation = "Constraint Violation"
)

// Problem - тело ответа об ошибке.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ConstraintViolation - тело ответа о нарушениях ограничений запроса.
type ConstraintViolation struct {
	Title      string                 `json:"title"`
	Status     int                    `json:"status"`
	Violations []validation.Violation `json:"violations"`
}

// BadRequest строит тело ответа 400 с указанным описанием.
func BadRequest(detail string) Problem {
	return Problem{Title: TitleBadRequest, Status: fiber.StatusBadRequest, Detail: detail}
}

// NotFound строит тело ответа 404 с указанным описанием.
func NotFound(detail string) Problem {
	return Problem{Title: TitleNotFound, Status: fiber.StatusNotFound, Detail: detail}
}

// InternalServerError строит тело ответа 500.
func InternalServerError() Problem {
	return Problem{Title: TitleInternalServerError, Status: fiber.StatusInternalServerError}
}

// Violations строит тело ответа 400 со списком нарушений.
func Violations(violations []validation.Violation) ConstraintViolation {
	return ConstraintViolation{
		Title:      TitleConstraintViolation,
		Status:     fiber.StatusBadRequest,
		Violations: violations,
	}
}
