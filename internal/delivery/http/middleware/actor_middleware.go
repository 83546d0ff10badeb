package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "aegis/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXActorID carries the caller's account ID, resolved by the
// authentication gateway in front of this service.
const HeaderXActorID = "X-Actor-Id"

// ActorMiddleware resolves the calling account from the gateway-supplied
// identity header and binds request-scoped metadata onto the context.
type ActorMiddleware struct {
	logger *slog.Logger
}

// NewActorMiddleware is the constructor for ActorMiddleware.
func NewActorMiddleware(logger *slog.Logger) *ActorMiddleware {
	return &ActorMiddleware{logger: logger}
}

// WithRequestContext assigns a request ID and a request-scoped logger to
// every request. It is registered globally, before route groups.
func (m *ActorMiddleware) WithRequestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestId", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireActor validates the identity header and stores the actor's account
// ID on the context. Routes behind this middleware can assume an actor.
func (m *ActorMiddleware) RequireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(HeaderXActorID)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "X-Actor-Id header is missing"})
		}

		actorID, err := uuid.Parse(header)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid actor ID format"})
		}

		deliverycontext.SetActorID(c, actorID)

		return next(c)
	}
}
