// Package recaptcha verifies Google reCAPTCHA v3 tokens against the classic
// siteverify endpoint.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks submitted tokens. A zero MinScore is treated as the
// conventional 0.5 threshold.
type Verifier struct {
	secretKey  string
	minScore   float64
	httpClient *http.Client
}

// NewVerifier creates a Verifier for the given secret key.
func NewVerifier(secretKey string, minScore float64) *Verifier {
	if minScore <= 0 {
		minScore = 0.5
	}
	return &Verifier{
		secretKey:  secretKey,
		minScore:   minScore,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify posts the token to siteverify and reports whether it passed.
// A missing secret or token fails closed.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if v.secretKey == "" || token == "" {
		return false, nil
	}

	form := url.Values{
		"secret":   {v.secretKey},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, siteVerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Success    bool     `json:"success"`
		Score      float64  `json:"score"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, fmt.Errorf("invalid siteverify response: %w", err)
	}

	return payload.Success && payload.Score >= v.minScore, nil
}
