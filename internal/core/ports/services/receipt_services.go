package services

import (
	"context"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
)

// ReceiptSvcFacade sends contribution receipts. Sending is best-effort: a
// failed send must be logged by the caller, never escalated into a failed
// save.
type ReceiptSvcFacade interface {
	// SendReceipt emails the HTML receipt for a stored contribution.
	SendReceipt(ctx context.Context, contribution *domain.Contribution) error

	// SendTestReceipt emails a sample receipt to the given address.
	SendTestReceipt(ctx context.Context, email string) error
}

// CaptchaVerifier checks a bot-defense token. Verification failure (or a
// score under the threshold) blocks the save; this is the one upstream
// dependency that is security-critical rather than best-effort.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}
