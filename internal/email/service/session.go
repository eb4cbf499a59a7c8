package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "github.com/DSI-OMS-RPA/email-notifier/internal/pkg/errors"
	"github.com/DSI-OMS-RPA/email-notifier/internal/pkg/logger"
)

// session is one live, scoped connection. Callers must pair openSession
// with a deferred Close so the connection is released on every exit
// path, including composition and send failures.
type session struct {
	transport Transport
	username  string // authenticated username, empty for anonymous sessions
	log       *logger.Logger
}

// openSession validates nothing itself; the dispatcher validates config
// before any connection attempt. Dial and auth failures are wrapped as
// connection errors.
func (s *Service) openSession(ctx context.Context) (*session, error) {
	if (s.cfg.Username == "") != (s.cfg.Password == "") {
		s.log.Warn("only one of username/password is set, connecting unauthenticated",
			zap.String("host", s.cfg.Host))
	}

	transport, err := s.newTransport(s.cfg)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrSMTPConnection)
	}

	if err := transport.Dial(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrSMTPConnection)
	}

	username := ""
	if s.cfg.Authenticated() {
		username = s.cfg.Username
	}

	return &session{
		transport: transport,
		username:  username,
		log:       s.log,
	}, nil
}

// Close releases the connection. Close failures are logged, never
// returned: closing is best-effort cleanup, not a correctness step.
func (sess *session) Close() {
	if err := sess.transport.Close(); err != nil {
		sess.log.Warn("failed to close SMTP session", zap.Error(err))
	}
}
