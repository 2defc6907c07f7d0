package http

import (
	"fixturehub/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the per-request identifier.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware assigns every request an identifier, stores it in the
// request context for log correlation, and echoes it back in the response.
// A client-supplied X-Request-ID is kept so callers can trace their own runs.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.SetUserContext(utils.WithRequestID(c.UserContext(), requestID))
		c.Set(HeaderRequestID, requestID)

		return c.Next()
	}
}
