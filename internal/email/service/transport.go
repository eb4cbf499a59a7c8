package service

import (
	"context"

	"github.com/wneessen/go-mail"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
)

// Transport is one session-oriented connection to a mail server:
// dial, send, close. Implementations are used for exactly one send
// and never shared across calls.
type Transport interface {
	Dial(ctx context.Context) error
	Send(msg *mail.Msg) error
	Close() error
}

// TransportFactory builds the transport for a single send. The default
// factory speaks SMTP via go-mail; tests substitute a recording stub.
type TransportFactory func(cfg *types.SMTPConfig) (Transport, error)

// smtpTransport wraps a go-mail client as a Transport.
type smtpTransport struct {
	client *mail.Client
}

// newSMTPTransport builds the production SMTP transport. With both
// credentials present the client uses implicit SSL and PLAIN auth;
// otherwise it connects as a plain unauthenticated session.
func newSMTPTransport(cfg *types.SMTPConfig) (Transport, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthNoAuth),
	}

	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	if cfg.Authenticated() {
		opts = append(opts,
			mail.WithSSL(),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}

	return &smtpTransport{client: client}, nil
}

func (t *smtpTransport) Dial(ctx context.Context) error {
	return t.client.DialWithContext(ctx)
}

func (t *smtpTransport) Send(msg *mail.Msg) error {
	return t.client.Send(msg)
}

func (t *smtpTransport) Close() error {
	return t.client.Close()
}
