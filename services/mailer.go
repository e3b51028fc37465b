// services/mailer.go
package services

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"wellbeing-backend/config"
)

// Message is a plain-text transactional email.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Mailer hands a message to a mail relay.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer picks the backend named by EMAIL_BACKEND.
func NewMailer(cfg *config.Config, logger zerolog.Logger) Mailer {
	if strings.EqualFold(cfg.EmailBackend, "smtp") {
		return NewSMTPMailer(SMTPSettings{
			Host:     cfg.EmailHost,
			Port:     cfg.EmailPort,
			Username: cfg.EmailHostUser,
			Password: cfg.EmailHostPassword,
			UseTLS:   cfg.EmailUseTLS,
			Timeout:  cfg.EmailTimeout,
		}, logger)
	}
	return NewConsoleMailer(logger)
}

// ConsoleMailer writes messages to the log instead of sending them.
type ConsoleMailer struct {
	logger zerolog.Logger
}

func NewConsoleMailer(logger zerolog.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: logger}
}

func (m *ConsoleMailer) Send(ctx context.Context, msg Message) error {
	m.logger.Info().
		Str("from", msg.From).
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("email (console backend)")
	return nil
}

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
	Timeout  time.Duration
}

// SMTPMailer sends through an SMTP relay. Consecutive failures open a circuit
// breaker so a dead relay fails fast instead of stalling requests.
type SMTPMailer struct {
	settings SMTPSettings
	breaker  *gobreaker.CircuitBreaker[struct{}]
}

const breakerTripAfter = 3

func NewSMTPMailer(settings SMTPSettings, logger zerolog.Logger) *SMTPMailer {
	if settings.Timeout <= 0 {
		settings.Timeout = 5 * time.Second
	}
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripAfter
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("Mail relay circuit breaker changed state")
		},
	})
	return &SMTPMailer{settings: settings, breaker: breaker}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}
	_, err := m.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, m.send(ctx, msg)
	})
	return err
}

func (m *SMTPMailer) send(ctx context.Context, msg Message) error {
	host := m.settings.Host
	addr := net.JoinHostPort(host, strconv.Itoa(m.settings.Port))

	dialer := &net.Dialer{Timeout: m.settings.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	deadline := time.Now().Add(m.settings.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("failed to set deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if m.settings.UseTLS {
		tlsConfig := &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if m.settings.Username != "" && m.settings.Password != "" {
		auth := smtp.PlainAuth("", m.settings.Username, m.settings.Password, host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, to := range msg.To {
		if err := client.Rcpt(to); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", to, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start message: %w", err)
	}
	if _, err := writer.Write([]byte(buildMessage(msg, time.Now()))); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	// the relay has accepted the message once DATA is closed
	_ = client.Quit()
	return nil
}

func buildMessage(msg Message, now time.Time) string {
	var b strings.Builder
	b.WriteString("From: " + msg.From + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(msg.Body, "\r\n", "\n"), "\n", "\r\n"))
	b.WriteString("\r\n")
	return b.String()
}
