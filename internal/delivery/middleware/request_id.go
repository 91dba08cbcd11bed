package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "geolead/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// headerCloudTraceContext is set by Google front ends as "TRACE_ID/SPAN_ID;o=1".
const headerCloudTraceContext = "X-Cloud-Trace-Context"

// RequestIDMiddleware resolves a request id for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process stores the request id and logger in both echo.Context and context.Context
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := resolveRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID),
			c.Request().Header.Get(headerCloudTraceContext))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithRequest(c.Request().Context(), requestID, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID prefers X-Request-Id, then the trace id, then a new UUID.
func resolveRequestID(requestID, traceContext string) string {
	if requestID != "" {
		return requestID
	}

	if traceID, _, _ := strings.Cut(traceContext, "/"); traceID != "" {
		return traceID
	}

	return uuid.New().String()
}
