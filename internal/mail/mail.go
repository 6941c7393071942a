// File: internal/mail/mail.go
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/go-gomail/gomail"
)

//go:embed templates/*.html
var templatesFS embed.FS

// CancellationMail 取消預約通知信的內容
type CancellationMail struct {
	ProviderName  string
	ProviderEmail string
	UserName      string
	Date          string
	Subject       string
}

// Mailer 寄送通知信
type Mailer interface {
	SendCancellation(ctx context.Context, m CancellationMail) error
}

// dialer 為 *gomail.Dialer 的子集合，便於測試替換
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPConfig SMTP 連線設定
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer 以 gomail 透過 SMTP 寄信
type SMTPMailer struct {
	dialer       dialer
	from         string
	cancellation *template.Template
}

// NewSMTPMailer 建立 SMTPMailer，locale 決定使用哪一份信件樣板 (找不到時使用 pt_BR)
func NewSMTPMailer(cfg SMTPConfig, locale string) (*SMTPMailer, error) {
	tmpl, err := loadTemplate("cancellation", locale)
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{
		dialer:       gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:         cfg.From,
		cancellation: tmpl,
	}, nil
}

func loadTemplate(name, locale string) (*template.Template, error) {
	path := fmt.Sprintf("templates/%s.%s.html", name, locale)
	if _, err := fs.Stat(templatesFS, path); err != nil {
		path = fmt.Sprintf("templates/%s.pt_BR.html", name)
	}
	return template.ParseFS(templatesFS, path)
}

func (s *SMTPMailer) SendCancellation(ctx context.Context, m CancellationMail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := s.cancellation.Execute(&body, m); err != nil {
		return fmt.Errorf("render cancellation mail: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetAddressHeader("To", m.ProviderEmail, m.ProviderName)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send cancellation mail to %s: %w", m.ProviderEmail, err)
	}
	return nil
}
