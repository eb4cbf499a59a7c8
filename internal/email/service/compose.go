package service

import (
	"github.com/wneessen/go-mail"

	"github.com/DSI-OMS-RPA/email-notifier/internal/email/types"
	apperrors "github.com/DSI-OMS-RPA/email-notifier/internal/pkg/errors"
	"github.com/DSI-OMS-RPA/email-notifier/internal/pkg/validator"
)

// compose assembles the transport-ready message and the full envelope
// recipient list (to + cc + bcc). Bcc addresses receive the mail but
// are never written as a visible header.
func (s *Service) compose(email *types.Email, authUsername string) (*mail.Msg, []string, error) {
	msg := mail.NewMsg()

	// Explicit sender wins when it passes validation, otherwise fall
	// back to the authenticated username.
	from := email.From
	if from == "" || !validator.IsValidEmail(from) {
		from = authUsername
	}
	if from == "" {
		return nil, nil, apperrors.New(apperrors.ErrComposeSender, "no sender address and no configured username")
	}
	if err := msg.From(from); err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrComposeSender)
	}

	if err := msg.To(email.To...); err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrComposeRecipients)
	}
	if len(email.Cc) > 0 {
		if err := msg.Cc(email.Cc...); err != nil {
			return nil, nil, apperrors.Wrap(err, apperrors.ErrComposeRecipients)
		}
	}
	if len(email.Bcc) > 0 {
		if err := msg.Bcc(email.Bcc...); err != nil {
			return nil, nil, apperrors.Wrap(err, apperrors.ErrComposeRecipients)
		}
	}

	msg.Subject(email.Subject)

	if email.IsHTML {
		msg.SetBodyString(mail.TypeTextHTML, email.Body)
	} else {
		msg.SetBodyString(mail.TypeTextPlain, email.Body)
	}

	// Input order is preserved; failed attachments are skipped inside.
	for _, path := range email.Attachments {
		s.attach(msg, path)
	}

	for key, value := range email.Headers {
		msg.SetGenHeader(mail.Header(key), value)
	}

	msg.SetGenHeader(mail.HeaderXMailer, "email-notifier")
	msg.SetDate()
	msg.SetMessageID()

	recipients := make([]string, 0, len(email.To)+len(email.Cc)+len(email.Bcc))
	recipients = append(recipients, email.To...)
	recipients = append(recipients, email.Cc...)
	recipients = append(recipients, email.Bcc...)

	return msg, recipients, nil
}
