package mailer

import (
	"fmt"

	"github.com/obrativa/obras-manager-api/infrastructure/integrator/mailer/mailerclient"
	"github.com/obrativa/obras-manager-api/internal/config"
	"github.com/obrativa/obras-manager-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// ConvitePortal são os dados do e-mail de convite para o portal do cliente
type ConvitePortal struct {
	Email        string
	NomeCliente  string
	NomeObra     string
	SenhaInicial string
	NovoUsuario  bool
}

type MailerIntegrator interface {
	SendConvitePortal(convite ConvitePortal) error
	SendLembreteAgenda(destinatario string, evento *domain.Evento) error
}

type MailerService struct {
	cfg    *config.Config
	Client mailerclient.Client
}

func New(cfg *config.Config, client mailerclient.Client) MailerIntegrator {
	return &MailerService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MailerService) SendConvitePortal(convite ConvitePortal) error {
	if !s.cfg.Mailer.Enabled {
		logrus.WithField("email", convite.Email).Info("Mailer desabilitado, convite do portal não enviado")
		return nil
	}

	assunto := fmt.Sprintf("Acompanhe a obra %s no portal", convite.NomeObra)

	corpo := fmt.Sprintf(
		`<p>Olá,</p>
<p>Você recebeu acesso ao portal de acompanhamento da obra <strong>%s</strong> (%s).</p>
<p>Acesse em: <a href="%s">%s</a></p>`,
		convite.NomeObra, convite.NomeCliente, s.cfg.App.PortalURL, s.cfg.App.PortalURL,
	)

	if convite.NovoUsuario {
		corpo += fmt.Sprintf(
			`<p>Sua senha inicial é: <strong>%s</strong></p>
<p>Troque a senha no primeiro acesso.</p>`,
			convite.SenhaInicial,
		)
	}

	return s.Client.SendEmail(mailerclient.SendEmailRequest{
		From:    s.cfg.Mailer.Sender,
		To:      convite.Email,
		Subject: assunto,
		HTML:    corpo,
	})
}

func (s *MailerService) SendLembreteAgenda(destinatario string, evento *domain.Evento) error {
	if !s.cfg.Mailer.Enabled {
		logrus.WithField("email", destinatario).Info("Mailer desabilitado, lembrete de agenda não enviado")
		return nil
	}

	assunto := fmt.Sprintf("Lembrete: %s", evento.Titulo)

	corpo := fmt.Sprintf(
		`<p>Olá,</p>
<p>Você tem um compromisso do tipo <strong>%s</strong> em %s:</p>
<p><strong>%s</strong></p>`,
		evento.Tipo, evento.DataHora.Format("02/01/2006 15:04"), evento.Titulo,
	)

	if evento.Notas != "" {
		corpo += fmt.Sprintf("<p>%s</p>", evento.Notas)
	}

	return s.Client.SendEmail(mailerclient.SendEmailRequest{
		From:    s.cfg.Mailer.Sender,
		To:      destinatario,
		Subject: assunto,
		HTML:    corpo,
	})
}
