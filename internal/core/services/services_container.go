package services

import (
	"log/slog"

	portsrepo "github.com/computeralex/seventh-traditioner/internal/core/ports/repositories"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/platform/config"
	"github.com/computeralex/seventh-traditioner/internal/platform/mailer"
	"github.com/computeralex/seventh-traditioner/internal/platform/paypal"
	"github.com/computeralex/seventh-traditioner/internal/platform/rates"
	"github.com/computeralex/seventh-traditioner/internal/platform/recaptcha"
	"github.com/computeralex/seventh-traditioner/internal/platform/tsml"
	"github.com/computeralex/seventh-traditioner/internal/utils"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies, building the external platform clients from configuration.
func NewServiceContainer(cfg *config.Config, repo portsrepo.ContributionRepository, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency descriptors come first since everything else formats amounts.
	currencySvc := NewCurrencyService(cfg.EnabledCurrencies)
	container.Currency = currencySvc

	container.ExchangeRate = NewExchangeRateService(rates.NewClient(cfg.RatesAPIURL), cfg.RatesCacheTTL)
	container.Meeting = NewMeetingService(tsml.NewClient(cfg.MeetingFeedURL, cfg.MeetingFeedCacheTTL))

	var sender MailSender
	if cfg.SMTPHost != "" {
		sender = mailer.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFromAddress, cfg.ServiceBodyName)
	}
	container.Receipt = NewReceiptService(sender, currencySvc, cfg.ServiceBodyName, cfg.EmailSubject)

	captcha := recaptcha.NewVerifier(cfg.RecaptchaSecretKey, cfg.RecaptchaMinScore)
	formTokenCheck := func(token string) bool {
		return utils.VerifyFormToken(token, cfg.FormTokenSecret)
	}
	container.Contribution = NewContributionService(
		repo,
		currencySvc,
		container.Meeting,
		container.Receipt,
		captcha,
		logger,
		formTokenCheck,
		cfg.CaptchaEnforced(),
	)

	paypalClient := paypal.NewClient(cfg.PayPalAPIBase(), cfg.PayPalClientID(), cfg.PayPalSecret(), cfg.ServiceBodyName)
	container.PayPal = NewPayPalService(paypalClient, currencySvc)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ContributionSvcFacade = (*ContributionService)(nil)
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.MeetingSvcFacade      = (*MeetingService)(nil)
	_ portssvc.ReceiptSvcFacade      = (*ReceiptService)(nil)
	_ portssvc.PayPalSvcFacade       = (*PayPalService)(nil)
)
