package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"geolead/config"
	deliverycontext "geolead/internal/delivery/context"
	"geolead/internal/delivery/event"
	"geolead/internal/domain/constants"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/service"
	"geolead/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// EventRouter routes a decoded event and returns the verdict.
type EventRouter interface {
	Route(ctx context.Context, event *service.Event) usecase.Verdict
}

// tokenValidator validates a Google-signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying store mutation events
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	logger         *slog.Logger
	router         EventRouter
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Router *event.Router
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	var audience string
	verifyPushAuth := false
	if pubsubCfg := params.Config.PubSub; pubsubCfg != nil {
		audience = pubsubCfg.PushAudience
		verifyPushAuth = audience != "" ||
			(pubsubCfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop)
	}

	return newPushHandler(params.Logger, params.Router, verifyPushAuth, audience, idtoken.Validate)
}

func newPushHandler(logger *slog.Logger, router EventRouter, verifyPushAuth bool, audience string, validateToken tokenValidator) *PushHandler {
	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  validateToken,
		logger:         logger,
		router:         router,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Pub/Sub redelivers on any non-2xx answer, so only the retry verdict maps to 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.JSON(http.StatusUnauthorized, domainerrors.NewErrorResponse(domainerrors.ErrPushUnauthorized, deliverycontext.GetRequestID(c)))
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.JSON(http.StatusBadRequest, domainerrors.NewErrorResponse(domainerrors.ErrPushMalformed, deliverycontext.GetRequestID(c)))
	}

	evt, err := decodeEvent(&pushMsg)
	if err != nil {
		// Redelivering an undecodable message never helps.
		h.logger.Error("[Worker] Dropping undecodable event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, evt)
	ctx, reqLogger := deliverycontext.WithRequest(ctx, requestID, h.logger)

	verdict := h.router.Route(ctx, evt)

	reqLogger.Info("[Worker] Event handled",
		slog.String("event_id", evt.ID),
		slog.String("event_type", string(evt.Type)),
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("verdict", string(verdict)),
	)

	if verdict == usecase.VerdictRetry {
		return c.JSON(http.StatusServiceUnavailable, domainerrors.NewErrorResponse(domainerrors.ErrEventRetry, requestID))
	}

	return c.NoContent(http.StatusOK)
}

// decodeEvent unwraps the base64 data of a push message. The Pub/Sub message
// id stands in when the event carries none.
func decodeEvent(pushMsg *PubSubMessage) (*service.Event, error) {
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var evt service.Event
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, errors.Wrap(err, "unmarshal event")
	}

	if evt.ID == "" {
		evt.ID = pushMsg.Message.MessageID
	}

	return &evt, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, evt *service.Event) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if evt.RequestID != "" {
		return evt.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
