package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/service"
	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
	"github.com/DSI-OMS-RPA/email-notifier/internal/pkg/logger"
)

type stubTransport struct {
	dialed   bool
	messages []*mail.Msg
}

func (t *stubTransport) Dial(ctx context.Context) error { t.dialed = true; return nil }
func (t *stubTransport) Send(msg *mail.Msg) error {
	t.messages = append(t.messages, msg)
	return nil
}
func (t *stubTransport) Close() error { return nil }

func newTestRouter(t *testing.T, cfg *types.SMTPConfig, transport *stubTransport) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.NewWithOptions(logger.WithLevel("error"))
	require.NoError(t, err)

	svc := service.NewService(cfg, log,
		service.WithTransportFactory(func(*types.SMTPConfig) (service.Transport, error) {
			return transport, nil
		}))

	router := gin.New()
	NewNotifyHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func validConfig() *types.SMTPConfig {
	return &types.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     465,
		Username: "sender@example.com",
		Password: "secret",
	}
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSendEndpoint(t *testing.T) {
	transport := &stubTransport{}
	router := newTestRouter(t, validConfig(), transport)

	rec := postJSON(router, "/api/v1/notifications/send", gin.H{
		"to":      []string{"t@x.com"},
		"subject": "S",
		"body":    "<p>hi</p>",
		"is_html": true,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, transport.messages, 1)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			MessageID  string   `json:"message_id"`
			Recipients []string `json:"recipients"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, []string{"t@x.com"}, resp.Data.Recipients)
	assert.NotEmpty(t, resp.Data.MessageID)
}

func TestSendEndpointValidation(t *testing.T) {
	transport := &stubTransport{}
	router := newTestRouter(t, validConfig(), transport)

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing to", gin.H{"subject": "S", "body": "b"}},
		{"invalid address", gin.H{"to": []string{"nope"}, "subject": "S", "body": "b"}},
		{"missing subject", gin.H{"to": []string{"t@x.com"}, "body": "b"}},
		{"missing body", gin.H{"to": []string{"t@x.com"}, "subject": "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(router, "/api/v1/notifications/send", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.False(t, transport.dialed)
}

func TestSendEndpointBadConfig(t *testing.T) {
	transport := &stubTransport{}
	router := newTestRouter(t, &types.SMTPConfig{Host: "smtp.example.com"}, transport)

	rec := postJSON(router, "/api/v1/notifications/send", gin.H{
		"to":      []string{"t@x.com"},
		"subject": "S",
		"body":    "b",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, transport.dialed)
}

func TestAlertEndpoint(t *testing.T) {
	transport := &stubTransport{}
	router := newTestRouter(t, validConfig(), transport)

	rec := postJSON(router, "/api/v1/notifications/alert", gin.H{
		"report": gin.H{
			"from_mail": "etl@x.com",
			"to":        []string{"ops@x.com"},
			"subject":   "ETL Complete",
		},
		"alert": gin.H{
			"alert_type":    "success",
			"alert_title":   "ETL Complete",
			"alert_message": "All done.",
			"table_data": []gin.H{
				{"Process": "ETL-001", "Status": "Completed"},
			},
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, transport.messages, 1)
}

func TestAlertEndpointMissingRecipients(t *testing.T) {
	transport := &stubTransport{}
	router := newTestRouter(t, validConfig(), transport)

	rec := postJSON(router, "/api/v1/notifications/alert", gin.H{
		"report": gin.H{"from_mail": "etl@x.com", "subject": "S"},
		"alert":  gin.H{"alert_type": "info", "alert_title": "T", "alert_message": "M"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, transport.dialed)
}
