package service

import (
	"context"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/template"
	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
	apperrors "github.com/DSI-OMS-RPA/email-notifier/internal/pkg/errors"
	"github.com/DSI-OMS-RPA/email-notifier/internal/pkg/logger"
)

// Service sends transactional and alert-style notifications over SMTP.
// One transport session is opened per send and always closed before
// the call returns; nothing is shared across calls.
type Service struct {
	cfg          *types.SMTPConfig
	log          *logger.Logger
	newTransport TransportFactory
}

// Option configures a Service.
type Option func(*Service)

// WithTransportFactory overrides the transport used for sends. Used by
// tests to substitute a recording stub.
func WithTransportFactory(factory TransportFactory) Option {
	return func(s *Service) {
		s.newTransport = factory
	}
}

// NewService creates the notification service. The config is validated
// again on every send, so a service constructed with a bad config
// still honors the never-raises boolean contract.
func NewService(cfg *types.SMTPConfig, log *logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.L()
	}

	s := &Service{
		cfg:          cfg,
		log:          log.Named("email"),
		newTransport: newSMTPTransport,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateConfig checks transport configuration completeness, naming
// every missing parameter. It performs no I/O.
func ValidateConfig(cfg *types.SMTPConfig) error {
	var missing []string
	if cfg == nil || cfg.Host == "" {
		missing = append(missing, "server")
	}
	if cfg == nil || cfg.Port == 0 {
		missing = append(missing, "port")
	}
	if len(missing) > 0 {
		return apperrors.New(apperrors.ErrConfigMissingParam, strings.Join(missing, ", "))
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return apperrors.New(apperrors.ErrConfigInvalidPort)
	}
	return nil
}

// Deliver validates, composes and sends one message, returning a
// receipt. Errors carry pipeline codes; callers wanting the boolean
// contract use Send instead.
func (s *Service) Deliver(ctx context.Context, email *types.Email) (*types.SendReceipt, error) {
	if email == nil || len(email.To) == 0 {
		return nil, apperrors.New(apperrors.ErrComposeRecipients, "at least one recipient is required")
	}

	// Fail fast before any connection attempt.
	if err := ValidateConfig(s.cfg); err != nil {
		return nil, err
	}

	sess, err := s.openSession(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	msg, recipients, err := s.compose(email, sess.username)
	if err != nil {
		return nil, err
	}

	if err := sess.transport.Send(msg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDelivery)
	}

	receipt := &types.SendReceipt{
		MessageID:  messageID(msg),
		Recipients: recipients,
		SentAt:     time.Now(),
	}

	s.log.WithContext(ctx).Info("email sent",
		zap.String("message_id", receipt.MessageID),
		zap.Int("recipients", len(recipients)),
		zap.String("subject", email.Subject))

	return receipt, nil
}

// Send is the never-raises entry point: any failure in validation,
// composition or transport is logged and collapsed to false.
func (s *Service) Send(ctx context.Context, email *types.Email) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithContext(ctx).Error("panic during send", zap.Any("panic", r))
			ok = false
		}
	}()

	if _, err := s.Deliver(ctx, email); err != nil {
		s.log.WithContext(ctx).Error("failed to send email",
			zap.Int("code", apperrors.ExtractCode(err)),
			zap.Error(err))
		return false
	}
	return true
}

// DeliverAlert renders the alert payload into an HTML report body and
// delivers it using the report's addressing record.
func (s *Service) DeliverAlert(ctx context.Context, report *types.ReportConfig, alert *types.Alert, attachments ...string) (*types.SendReceipt, error) {
	if report == nil {
		return nil, apperrors.New(apperrors.ErrInvalidParams, "report config is required")
	}

	body, err := template.RenderAlert(alert)
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Info("sending templated notification",
		zap.Strings("to", report.To),
		zap.String("alert_type", alert.Type))

	return s.Deliver(ctx, &types.Email{
		To:          report.To,
		Cc:          report.Cc,
		From:        report.FromMail,
		Subject:     report.Subject,
		Body:        body,
		IsHTML:      true,
		Attachments: attachments,
	})
}

// SendAlert is the never-raises templated entry point.
func (s *Service) SendAlert(ctx context.Context, report *types.ReportConfig, alert *types.Alert, attachments ...string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithContext(ctx).Error("panic during templated send", zap.Any("panic", r))
			ok = false
		}
	}()

	if _, err := s.DeliverAlert(ctx, report, alert, attachments...); err != nil {
		s.log.WithContext(ctx).Error("failed to send templated email",
			zap.Int("code", apperrors.ExtractCode(err)),
			zap.Error(err))
		return false
	}
	return true
}

// messageID extracts the generated Message-ID header, if present.
func messageID(msg *mail.Msg) string {
	if ids := msg.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		return ids[0]
	}
	return ""
}
