// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notehub/pkg/logger"
)

// RequestContextKey - ключ Locals с контекстом запроса.
const RequestContextKey = "requestContext"

// HeaderRequestID - заголовок с идентификатором запроса клиента.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware привязывает идентификатор запроса к контексту.
// Идентификатор берётся из заголовка или генерируется.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		requestCtx := logger.NewRequestIDContext(ctx.Context(), requestID)

		ctx.Locals(RequestContextKey, requestCtx)
		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}
