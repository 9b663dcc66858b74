package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is the database-facing shape of a recorded contribution.
// Column layout matches the contributions table (see migrations).
type Contribution struct {
	ID               int64           `json:"id"`
	TransactionID    string          `json:"transactionID"` // unique
	PayPalOrderID    *string         `json:"paypalOrderID"`
	MemberName       string          `json:"memberName"`
	MemberEmail      string          `json:"memberEmail"`
	MemberPhone      *string         `json:"memberPhone"`
	ContributorType  string          `json:"contributorType"`
	MeetingDay       *string         `json:"meetingDay"`
	GroupName        *string         `json:"groupName"`
	GroupID          *int64          `json:"groupID"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	ContributionDate time.Time       `json:"contributionDate"`
	PayPalStatus     *string         `json:"paypalStatus"`
	CustomNotes      *string         `json:"customNotes"`
	IPAddress        *string         `json:"ipAddress"`
	UserAgent        *string         `json:"userAgent"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
