package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributorType indicates whether a contribution is attributed to an
// individual member or made on behalf of a meeting/group.
type ContributorType string

const (
	ContributorIndividual ContributorType = "individual"
	ContributorGroup      ContributorType = "group"
)

// Valid reports whether the contributor type is one of the known values.
func (t ContributorType) Valid() bool {
	return t == ContributorIndividual || t == ContributorGroup
}

// Contribution represents one recorded monetary gift tied to a payment
// confirmation. TransactionID is the canonical external identifier (unique
// across all records); PayPalOrderID is a legacy alias from earlier plugin
// versions and is still matched on duplicate lookups.
type Contribution struct {
	ID               int64           `json:"id"`
	TransactionID    string          `json:"transactionID"`
	PayPalOrderID    string          `json:"paypalOrderID"`
	MemberName       string          `json:"memberName"`
	MemberEmail      string          `json:"memberEmail"`
	MemberPhone      string          `json:"memberPhone"`
	ContributorType  ContributorType `json:"contributorType"`
	MeetingDay       string          `json:"meetingDay"` // "0".."6" (0=Sunday) or free text
	GroupName        string          `json:"groupName"`
	GroupID          int64           `json:"groupID"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	ContributionDate time.Time       `json:"contributionDate"`
	PayPalStatus     string          `json:"paypalStatus"`
	CustomNotes      string          `json:"customNotes"`
	IPAddress        string          `json:"ipAddress"`
	UserAgent        string          `json:"userAgent"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
