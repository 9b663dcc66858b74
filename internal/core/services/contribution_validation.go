package services

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/shopspring/decimal"
)

// requiredFields are checked for presence before any per-field rule runs, in
// this order, so the first missing one is the one reported.
var requiredFields = []string{"transaction_id", "member_name", "member_email", "amount", "currency", "contributor_type"}

// normalizeContribution runs the ordered validation pass over a raw
// submission and produces the contribution to persist. Checks run in a fixed
// priority order and the first violated rule wins; later rules may assume
// earlier ones passed. Every failure wraps apperrors.ErrValidation.
func (s *ContributionService) normalizeContribution(req dto.SaveContributionRequest) (*domain.Contribution, error) {
	transactionID := strings.TrimSpace(req.TransactionID)
	name := strings.TrimSpace(req.MemberName)
	email := strings.TrimSpace(req.MemberEmail)
	amountRaw := strings.TrimSpace(req.Amount)
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	contributorType := domain.ContributorType(strings.TrimSpace(req.ContributorType))

	present := map[string]bool{
		"transaction_id":   transactionID != "",
		"member_name":      name != "",
		"member_email":     email != "",
		"amount":           amountRaw != "",
		"currency":         currency != "",
		"contributor_type": contributorType != "",
	}
	for _, field := range requiredFields {
		if !present[field] {
			return nil, validationFailure("Required field missing: %s", field)
		}
	}

	if len(name) < 2 {
		return nil, validationFailure("Please provide your name.")
	}
	if !validEmail(email) {
		return nil, validationFailure("Please provide a valid email address.")
	}
	if !contributorType.Valid() {
		return nil, validationFailure("Invalid contributor type: %s", contributorType)
	}
	if !s.currency.IsSupported(currency) {
		return nil, validationFailure("Unsupported currency: %s", currency)
	}

	amount, err := decimal.NewFromString(amountRaw)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, validationFailure("Contribution amount must be greater than zero.")
	}

	meetingDay := strings.TrimSpace(req.MeetingDay)
	meetingID := strings.TrimSpace(req.MeetingID)
	meetingName := strings.TrimSpace(req.MeetingName)
	if contributorType == domain.ContributorGroup {
		if meetingDay == "" {
			return nil, validationFailure("Meeting day is required when contributing on behalf of a group.")
		}
		if meetingID == "" && meetingName == "" {
			return nil, validationFailure("Meeting information is required when contributing on behalf of a group.")
		}
	}

	var groupID int64
	if raw := strings.TrimSpace(req.GroupID); raw != "" {
		groupID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || groupID < 0 {
			return nil, validationFailure("Invalid group id: %s", raw)
		}
	}

	return &domain.Contribution{
		TransactionID:    transactionID,
		PayPalOrderID:    strings.TrimSpace(req.PayPalOrderID),
		MemberName:       name,
		MemberEmail:      email,
		MemberPhone:      strings.TrimSpace(req.MemberPhone),
		ContributorType:  contributorType,
		MeetingDay:       meetingDay,
		GroupName:        strings.TrimSpace(req.GroupName),
		GroupID:          groupID,
		Amount:           amount,
		Currency:         currency,
		ContributionDate: time.Now(),
		PayPalStatus:     strings.TrimSpace(req.PayPalStatus),
		CustomNotes:      strings.TrimSpace(req.CustomNotes),
	}, nil
}

func validationFailure(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// validEmail accepts a plain RFC 5322 address with a dotted domain. The
// dotted-domain requirement rejects addresses like user@localhost, which the
// receipt mailer could never deliver to anyway.
func validEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return false
	}
	at := strings.LastIndex(address, "@")
	domainPart := address[at+1:]
	return strings.Contains(domainPart, ".") && !strings.HasPrefix(domainPart, ".") && !strings.HasSuffix(domainPart, ".")
}
