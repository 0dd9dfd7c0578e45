package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medi/internal/domain/service"
	"medi/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(notificationSvc service.NotificationService, tokens []string) *PushHandler {
	return &PushHandler{
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationSvc: notificationSvc,
		deviceTokens:    tokens,
	}
}

func pushRequest(t *testing.T, event *service.AlarmEvent) *http.Request {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/alarm-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_FansOutToEventTokens(t *testing.T) {
	notificationSvc := new(mocks.NotificationService)
	notificationSvc.On("SendBatchNotification",
		mock.Anything,
		[]string{"token-a", "token-b"},
		"Medication Reminder",
		"Time for Metformin (500mg)",
		mock.MatchedBy(func(data map[string]string) bool {
			return data["kind"] == "medication" && data["time_of_day"] == "20:00"
		}),
	).Return(2, 0, []string(nil), nil)

	h := newPushHandler(notificationSvc, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlarmEvent{
		EntryID:      "entry-1",
		Kind:         "medication",
		DisplayName:  "Metformin (500mg)",
		TimeOfDay:    "20:00",
		RaisedAt:     "2026-08-28T20:00:00+05:30",
		DeviceTokens: []string{"token-a", "token-b"},
	}), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	notificationSvc.AssertExpectations(t)
}

func TestPushHandler_FallsBackToConfiguredTokens(t *testing.T) {
	notificationSvc := new(mocks.NotificationService)
	notificationSvc.On("SendBatchNotification",
		mock.Anything, []string{"configured-token"}, "Hydration Reminder", mock.Anything, mock.Anything,
	).Return(1, 0, []string(nil), nil)

	h := newPushHandler(notificationSvc, []string{"configured-token"})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlarmEvent{
		EntryID:     "entry-2",
		Kind:        "hydration",
		DisplayName: "250ml of water",
		TimeOfDay:   "09:00",
	}), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	notificationSvc.AssertExpectations(t)
}

func TestPushHandler_SendFailureIsRetryable(t *testing.T) {
	notificationSvc := new(mocks.NotificationService)
	notificationSvc.On("SendBatchNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
	).Return(0, 0, []string(nil), errors.New("fcm unavailable"))

	h := newPushHandler(notificationSvc, []string{"token-a"})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlarmEvent{
		EntryID:     "entry-3",
		Kind:        "medication",
		DisplayName: "Lisinopril (10mg)",
		TimeOfDay:   "08:00",
	}), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_NoTokensDropsEvent(t *testing.T) {
	notificationSvc := new(mocks.NotificationService)

	h := newPushHandler(notificationSvc, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(pushRequest(t, &service.AlarmEvent{
		EntryID:     "entry-4",
		Kind:        "medication",
		DisplayName: "Metformin (500mg)",
		TimeOfDay:   "20:00",
	}), rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	notificationSvc.AssertNotCalled(t, "SendBatchNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPushHandler_MalformedBody(t *testing.T) {
	h := newPushHandler(new(mocks.NotificationService), nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"not-base64!!"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
