package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers receive at route registration.
type ServiceContainer struct {
	Contribution ContributionSvcFacade
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Meeting      MeetingSvcFacade
	Receipt      ReceiptSvcFacade
	PayPal       PayPalSvcFacade
}
