package app

import (
	"github.com/monopay/monopay-api/internal/domain"
	"github.com/monopay/monopay-api/internal/infrastructure/external/mailer"
)

func (a *application) InitMailerService() domain.MailerService {
	return mailer.NewMailerService(
		a.config.Mailer.URL,
		a.config.Mailer.APIKey,
		a.config.Mailer.FrontendURL,
	)
}
