package dto

// FormBootstrapResponse is everything the contribution form needs to render:
// the Go-native replacement for the data the plugin used to inject via
// wp_localize_script plus the per-currency settings baked into the template.
type FormBootstrapResponse struct {
	FellowshipName   string                  `json:"fellowshipName"`
	DefaultCurrency  string                  `json:"defaultCurrency"`
	Currencies       []CurrencyResponse      `json:"currencies"`
	ShowGroupID      bool                    `json:"showGroupID"`
	PayPalClientID   string                  `json:"paypalClientID"`
	PayPalMode       string                  `json:"paypalMode"`
	RecaptchaSiteKey string                  `json:"recaptchaSiteKey,omitempty"`
	FormToken        string                  `json:"formToken"`
	// Converted min/max per enabled currency; omitted entirely when the
	// rate source is unavailable.
	Limits map[string]AmountLimits `json:"limits,omitempty"`
}
