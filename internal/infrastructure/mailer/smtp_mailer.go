package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"

	"coletaverde/internal/infrastructure/config"
	"coletaverde/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var verificationTemplate = template.Must(template.New("verify").Parse(
	`<p>Olá {{.Name}},</p><p>Confirme seu email em <a href="{{.Link}}">{{.Link}}</a>.</p>`,
))

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends the account verification email. Without SMTP_HOST it only
// logs the link.
type SMTPMailer struct {
	cfg    config.SMTP
	send   sendFunc
	logger logrus.FieldLogger
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.SMTP, logger logrus.FieldLogger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, logger: logger.WithField("module", "mailer")}
}

func (m *SMTPMailer) SendVerification(ctx context.Context, to, name, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.Host == "" {
		m.logger.WithFields(logrus.Fields{"to": to, "link": link}).Info("smtp not configured, verification link logged")
		return nil
	}

	var body bytes.Buffer
	if err := verificationTemplate.Execute(&body, struct{ Name, Link string }{name, link}); err != nil {
		return errors.Wrap(err, "mailer: render")
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.User)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	msg.WriteString("Subject: Coleta Verde - confirme seu email\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(body.Bytes())

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	if err := m.send(addr, auth, m.cfg.User, []string{to}, msg.Bytes()); err != nil {
		return errors.Wrap(err, "mailer: send")
	}
	return nil
}
