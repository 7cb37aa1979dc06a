package adapter

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/MKhiriev/resume-shortlister/internal/config"
	"github.com/MKhiriev/resume-shortlister/internal/logger"
)

const otpSubject = "Verify your email - Resume Shortlister"

// sendMailFunc matches [smtp.SendMail].
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	cfg      config.SMTP
	sendMail sendMailFunc
	logger   *logger.Logger
}

// NewSMTPMailer builds a [Mailer] that relays through cfg.Host. PLAIN auth
// is used when cfg.User is set; otherwise the relay is used unauthenticated.
func NewSMTPMailer(cfg config.SMTP, logger *logger.Logger) Mailer {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return &smtpMailer{cfg: cfg, sendMail: smtp.SendMail, logger: logger}
}

func (m *smtpMailer) SendOTP(ctx context.Context, to, otp string) error {
	if m.cfg.Host == "" || m.cfg.From == "" {
		return ErrMailerNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := m.sendMail(addr, auth, m.cfg.From, []string{to}, buildOTPMessage(m.cfg.From, to, otp)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*smtpMailer.SendOTP").Msg("error sending otp email")
		return fmt.Errorf("send otp email: %w", err)
	}

	return nil
}

func buildOTPMessage(from, to, otp string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + otpSubject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString("Your verification code is: " + otp + "\r\n")
	return []byte(b.String())
}
