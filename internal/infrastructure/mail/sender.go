// Package mail adaptadores del puerto inventory.MailSender: SMTP real vía
// gomail y un sender de development que solo escribe en el log.
package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/stockroom-api/internal/application/inventory"
	"github.com/jhoicas/stockroom-api/pkg/config"
	"github.com/jhoicas/stockroom-api/pkg/logger"
)

var _ inventory.MailSender = (*SMTPSender)(nil)
var _ inventory.MailSender = (*DevSender)(nil)

// SMTPSender envía correos HTML por SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender construye el sender con la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send entrega un solo mensaje a todos los destinatarios.
func (s *SMTPSender) Send(recipients []string, subject, bodyHTML string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", bodyHTML)
	return s.dialer.DialAndSend(m)
}

// DevSender reemplazo del transporte en development (SMTP_HOST vacío):
// escribe el correo en el log en lugar de enviarlo.
type DevSender struct {
	log *logger.Logger
}

// NewDevSender construye el sender de development.
func NewDevSender(log *logger.Logger) *DevSender {
	return &DevSender{log: log}
}

// Send registra el correo sin entregarlo.
func (s *DevSender) Send(recipients []string, subject, bodyHTML string) error {
	s.log.Info().Strs("to", recipients).Str("subject", subject).
		Str("body", bodyHTML).Msg("[MAIL:DEV] correo no enviado (modo development)")
	return nil
}

// FromConfig elige el sender según la configuración: SMTP real si hay host,
// el de development si no.
func FromConfig(cfg config.SMTPConfig, log *logger.Logger) inventory.MailSender {
	if cfg.Host == "" {
		return NewDevSender(log)
	}
	return NewSMTPSender(cfg)
}
