// Package handler contains the notifier worker's push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"medi/config"
	deliverycontext "medi/internal/delivery/context"
	"medi/internal/domain/constants"
	"medi/internal/domain/service"

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

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying raised alarms and fans
// them out to device tokens over FCM.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceTokens    []string
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Verify push auth only for the Google provider outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var deviceTokens []string
	if params.Config.Notifier != nil {
		deviceTokens = params.Config.Notifier.DeviceTokens
	}

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceTokens:    deviceTokens,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.AlarmEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse alarm event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing alarm event",
		slog.String("entry_id", event.EntryID),
		slog.String("kind", event.Kind),
		slog.String("display_name", event.DisplayName),
	)

	if err := h.processAlarm(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process alarm",
			slog.String("entry_id", event.EntryID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Alarm event processed successfully",
		slog.String("entry_id", event.EntryID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.AlarmEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processAlarm pushes the alarm to every configured device token. Tokens on
// the event override the worker's static configuration.
func (h *PushHandler) processAlarm(ctx context.Context, event *service.AlarmEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	tokens := event.DeviceTokens
	if len(tokens) == 0 {
		tokens = h.deviceTokens
	}
	if len(tokens) == 0 {
		logger.Info("[Worker] No device tokens configured, dropping alarm push",
			slog.String("entry_id", event.EntryID))

		return nil
	}

	title := alarmTitle(event.Kind)
	body := "Time for " + event.DisplayName
	data := map[string]string{
		"entry_id":    event.EntryID,
		"kind":        event.Kind,
		"time_of_day": event.TimeOfDay,
		"raised_at":   event.RaisedAt,
	}

	successCount, failureCount, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		// Delivery infrastructure failure; worth a Pub/Sub retry.
		return newRetryableError(err)
	}

	logger.Info("[Worker] Alarm push fan-out finished",
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

func alarmTitle(kind string) string {
	if kind == "hydration" {
		return "Hydration Reminder"
	}

	return "Medication Reminder"
}

// verifyPubSubToken verifies the JWT token from Pub/Sub push requests
func verifyPubSubToken(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) <= len(bearerPrefix) || authHeader[:len(bearerPrefix)] != bearerPrefix {
		return errors.New("invalid authorization header format")
	}

	token := authHeader[len(bearerPrefix):]
	if _, err := idtoken.Validate(r.Context(), token, ""); err != nil {
		return errors.Wrap(err, "invalid token")
	}

	return nil
}
