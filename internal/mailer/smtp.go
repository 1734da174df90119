// Package mailer пересылает подтверждённые сообщения на фиксированный
// почтовый адрес. Повторных попыток нет: ошибка доставки поднимается к
// вызывающему, сообщение остаётся неотправленным.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"github.com/central-university-dev/go-message-sender/internal/config"
	domainerrors "github.com/central-university-dev/go-message-sender/internal/domain/errors"
)

const (
	emailSubject    = "Новое сообщение из Telegram"
	implicitTLSPort = 465
)

type SMTPSender struct {
	host     string
	port     int
	login    string
	password string
	fromAddr string
	toAddr   string
	timeout  time.Duration
	logger   *slog.Logger
}

func NewSMTPSender(cfg *config.Config, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		login:    cfg.SMTPLogin,
		password: cfg.SMTPPassword,
		fromAddr: cfg.EmailFromAddr,
		toAddr:   cfg.EmailToAddr,
		timeout:  cfg.SMTPTimeout,
		logger:   logger,
	}
}

// Send доставляет текст на настроенный адрес, указывая отображаемое имя
// отправителя в теле письма.
func (s *SMTPSender) Send(ctx context.Context, senderName, text string) error {
	client, err := s.connect(ctx)
	if err != nil {
		return &domainerrors.ErrMailDelivery{Cause: err}
	}

	defer func() {
		_ = client.Close()
	}()

	if err := s.deliver(client, senderName, text); err != nil {
		return &domainerrors.ErrMailDelivery{Cause: err}
	}

	if err := client.Quit(); err != nil {
		s.logger.Warn("Ошибка при завершении SMTP сессии", "error", err)
	}

	s.logger.Info("Письмо успешно отправлено",
		"to", s.toAddr,
	)

	return nil
}

func (s *SMTPSender) connect(ctx context.Context) (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	dialer := net.Dialer{Timeout: s.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подключении к SMTP серверу: %w", err)
	}

	// Порт 465 означает неявный TLS, остальные порты работают через STARTTLS.
	if s.port == implicitTLSPort {
		conn = tls.Client(conn, &tls.Config{ServerName: s.host})
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ошибка при создании SMTP клиента: %w", err)
	}

	if s.port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
				_ = client.Close()
				return nil, fmt.Errorf("ошибка STARTTLS: %w", err)
			}
		}
	}

	if s.login != "" && s.password != "" {
		auth := smtp.PlainAuth("", s.login, s.password, s.host)
		if err := client.Auth(auth); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ошибка аутентификации на SMTP сервере: %w", err)
		}
	}

	return client, nil
}

func (s *SMTPSender) deliver(client *smtp.Client, senderName, text string) error {
	if err := client.Mail(s.fromAddr); err != nil {
		return fmt.Errorf("ошибка команды MAIL: %w", err)
	}

	if err := client.Rcpt(s.toAddr); err != nil {
		return fmt.Errorf("ошибка команды RCPT: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("ошибка команды DATA: %w", err)
	}

	if _, err := wc.Write([]byte(BuildMessage(s.fromAddr, s.toAddr, senderName, text))); err != nil {
		_ = wc.Close()
		return fmt.Errorf("ошибка при записи тела письма: %w", err)
	}

	if err := wc.Close(); err != nil {
		return fmt.Errorf("ошибка при завершении тела письма: %w", err)
	}

	return nil
}

// BuildMessage собирает письмо с фиксированной темой и атрибуцией
// отправителя в теле.
func BuildMessage(fromAddr, toAddr, senderName, text string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\nОтправитель: %s\n\n%s",
		fromAddr, toAddr, emailSubject, senderName, text,
	)
}
