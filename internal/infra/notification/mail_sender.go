// Package notification delivers one-time codes and reset links over SMTP.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/gomail.v2"

	"aegis/config"
	"aegis/internal/domain/entity"
	"aegis/internal/domain/service"
)

// Params defines the parameters required for the mail sender.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// mailSender is a concrete implementation of NotificationSender using gomail.
type mailSender struct {
	dialer       *gomail.Dialer
	from         string
	resetBaseURL string
	logger       *slog.Logger
}

// NewMailSender is the constructor for mailSender.
func NewMailSender(params Params) service.NotificationSender {
	cfg := params.Config.Mail
	if cfg == nil {
		cfg = &config.MailConfig{}
	}

	return &mailSender{
		dialer:       gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:         cfg.From,
		resetBaseURL: cfg.ResetBaseURL,
		logger:       params.Logger,
	}
}

func (s *mailSender) SendCode(ctx context.Context, email string, purpose entity.CodePurpose, code string) error {
	subject := "Your verification code"
	if purpose == entity.PurposePasswordReset {
		subject = "Your password reset code"
	}

	body := fmt.Sprintf("Your code is %s. It expires in 10 minutes.", code)

	return s.send(ctx, email, subject, body)
}

func (s *mailSender) SendResetLink(ctx context.Context, email string, token string) error {
	link := fmt.Sprintf("%s?token=%s", s.resetBaseURL, url.QueryEscape(token))
	body := fmt.Sprintf("Follow this link to reset your password: %s\nThe link expires in 15 minutes.", link)

	return s.send(ctx, email, "Reset your password", body)
}

func (s *mailSender) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "send mail")
	}

	s.logger.InfoContext(ctx, "mail sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
