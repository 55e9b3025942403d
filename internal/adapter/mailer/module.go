package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/jayeshsingh-11/creative-cascade/internal/config"
)

// Module exposes the SMTP mailer to the fx graph.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) Mailer {
	return NewSMTPMailer(p.Config.SMTPHost, p.Config.SMTPPort, p.Config.SMTPUser, p.Config.SMTPPassword,
		p.Config.MailFrom, p.Config.MailFromName, p.Logger)
}
