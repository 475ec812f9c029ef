package mail

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keyword-sync/internal/config"
	gomail "gopkg.in/gomail.v2"
)

// Mailer envia o resumo de execução por e-mail
type Mailer interface {
	Send(subject, body string, recipients []string) error
}

type SMTPMailer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send entrega um e-mail de texto simples aos destinatários configurados
func (m *SMTPMailer) Send(subject, body string, recipients []string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.cfg.Mail.From)
	message.SetHeader("To", recipients...)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	dialer := gomail.NewDialer(
		m.cfg.Mail.SMTPHost,
		m.cfg.Mail.SMTPPort,
		m.cfg.Mail.Username,
		m.cfg.Mail.Password,
	)

	if err := dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "erro ao enviar e-mail")
	}

	logrus.WithFields(logrus.Fields{
		"recipients": recipients,
		"subject":    subject,
	}).Info("mail: e-mail de resumo enviado")

	return nil
}
