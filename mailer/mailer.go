package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

const passwordResetSubject = "Roleplay: Recuperação de Senha"

// Mailer envia as notificações do sistema. A implementação real usa o Resend;
// testes injetam um fake que grava as mensagens.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, username, link string) error
}

type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) SendPasswordReset(ctx context.Context, to, username, link string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: passwordResetSubject,
		Html:    passwordResetBody(username, link),
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}
	log.Printf("password reset mail sent to=%s id=%s", to, sent.Id)
	return nil
}

func passwordResetBody(username, link string) string {
	return fmt.Sprintf(
		"<p>Olá, %s!</p>"+
			"<p>Recebemos um pedido para redefinir a sua senha. "+
			"Clique no link abaixo para escolher uma nova:</p>"+
			"<p><a href=%q>%s</a></p>"+
			"<p>O link expira em 2 horas. Se você não pediu a redefinição, ignore este e-mail.</p>",
		username, link, link,
	)
}
