package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

// RequestIDMiddleware generates or extracts a unique request ID per request
// and attaches a request-scoped logger to the echo context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new request ID middleware.
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process propagates the client-supplied request ID or mints a new one, and
// echoes it back on the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Response().Header().Set(HeaderXRequestID, requestID)
		c.Set("requestID", requestID)
		c.Set("logger", m.logger.With(slog.String("request_id", requestID)))

		return next(c)
	}
}
