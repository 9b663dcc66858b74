package dto

import (
	"time"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveContributionRequest carries the raw payment-confirmation submission
// from the browser form. Every field arrives as an untrusted string; the
// contribution service runs its own ordered validation pass instead of
// relying on binding tags, so the first violated rule (not an arbitrary one)
// is reported back.
type SaveContributionRequest struct {
	FormToken      string `form:"form_token" json:"formToken"`
	RecaptchaToken string `form:"recaptcha_token" json:"recaptchaToken"`

	TransactionID   string `form:"transaction_id" json:"transactionID"`
	PayPalOrderID   string `form:"paypal_order_id" json:"paypalOrderID"`
	MemberName      string `form:"member_name" json:"memberName"`
	MemberEmail     string `form:"member_email" json:"memberEmail"`
	MemberPhone     string `form:"member_phone" json:"memberPhone"`
	ContributorType string `form:"contributor_type" json:"contributorType"`
	MeetingDay      string `form:"meeting_day" json:"meetingDay"`
	MeetingID       string `form:"meeting_id" json:"meetingID"`
	MeetingName     string `form:"meeting_name" json:"meetingName"`
	GroupName       string `form:"group_name" json:"groupName"`
	GroupID         string `form:"group_id" json:"groupID"`
	Amount          string `form:"amount" json:"amount"`
	Currency        string `form:"currency" json:"currency"`
	PayPalStatus    string `form:"paypal_status" json:"paypalStatus"`
	CustomNotes     string `form:"custom_notes" json:"customNotes"`
}

// SaveContributionResponse confirms a stored contribution.
type SaveContributionResponse struct {
	Message        string `json:"message"`
	ContributionID int64  `json:"contributionID"`
}

// ContributionResponse is the admin-facing view of one contribution.
type ContributionResponse struct {
	ID               int64           `json:"id"`
	TransactionID    string          `json:"transactionID"`
	PayPalOrderID    string          `json:"paypalOrderID,omitempty"`
	MemberName       string          `json:"memberName"`
	MemberEmail      string          `json:"memberEmail"`
	MemberPhone      string          `json:"memberPhone,omitempty"`
	ContributorType  string          `json:"contributorType"`
	MeetingDay       string          `json:"meetingDay,omitempty"`
	GroupName        string          `json:"groupName,omitempty"`
	GroupID          int64           `json:"groupID,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	FormattedAmount  string          `json:"formattedAmount"`
	Currency         string          `json:"currency"`
	ContributionDate time.Time       `json:"contributionDate"`
	PayPalStatus     string          `json:"paypalStatus,omitempty"`
	CustomNotes      string          `json:"customNotes,omitempty"`
	IPAddress        string          `json:"ipAddress,omitempty"`
	UserAgent        string          `json:"userAgent,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToContributionResponse converts a domain Contribution; formatted is the
// presentation string produced by the currency service.
func ToContributionResponse(c *domain.Contribution, formatted string) ContributionResponse {
	return ContributionResponse{
		ID:               c.ID,
		TransactionID:    c.TransactionID,
		PayPalOrderID:    c.PayPalOrderID,
		MemberName:       c.MemberName,
		MemberEmail:      c.MemberEmail,
		MemberPhone:      c.MemberPhone,
		ContributorType:  string(c.ContributorType),
		MeetingDay:       c.MeetingDay,
		GroupName:        c.GroupName,
		GroupID:          c.GroupID,
		Amount:           c.Amount,
		FormattedAmount:  formatted,
		Currency:         c.Currency,
		ContributionDate: c.ContributionDate,
		PayPalStatus:     c.PayPalStatus,
		CustomNotes:      c.CustomNotes,
		IPAddress:        c.IPAddress,
		UserAgent:        c.UserAgent,
		CreatedAt:        c.CreatedAt,
	}
}

// ListContributionsParams are the admin list filters.
type ListContributionsParams struct {
	Search    string `form:"search"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=date amount name"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,min=1,max=200"`
}

// ListContributionsResponse is the paged admin list, with the running totals
// the original admin page displayed above the table.
type ListContributionsResponse struct {
	Contributions []ContributionResponse     `json:"contributions"`
	TotalCount    int                        `json:"totalCount"`
	TotalPages    int                        `json:"totalPages"`
	Page          int                        `json:"page"`
	PerPage       int                        `json:"perPage"`
	TotalAmounts  map[string]decimal.Decimal `json:"totalAmounts"` // per currency
}
