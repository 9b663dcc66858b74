package mapping

import (
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/computeralex/seventh-traditioner/internal/models"
)

// ToModelContribution converts a domain Contribution to its database model.
// Optional columns become NULL when the domain value is empty.
func ToModelContribution(d domain.Contribution) models.Contribution {
	return models.Contribution{
		ID:               d.ID,
		TransactionID:    d.TransactionID,
		PayPalOrderID:    optStr(d.PayPalOrderID),
		MemberName:       d.MemberName,
		MemberEmail:      d.MemberEmail,
		MemberPhone:      optStr(d.MemberPhone),
		ContributorType:  string(d.ContributorType),
		MeetingDay:       optStr(d.MeetingDay),
		GroupName:        optStr(d.GroupName),
		GroupID:          optInt64(d.GroupID),
		Amount:           d.Amount,
		Currency:         d.Currency,
		ContributionDate: d.ContributionDate,
		PayPalStatus:     optStr(d.PayPalStatus),
		CustomNotes:      optStr(d.CustomNotes),
		IPAddress:        optStr(d.IPAddress),
		UserAgent:        optStr(d.UserAgent),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainContribution converts a database model Contribution to its domain form.
func ToDomainContribution(m models.Contribution) domain.Contribution {
	return domain.Contribution{
		ID:               m.ID,
		TransactionID:    m.TransactionID,
		PayPalOrderID:    deref(m.PayPalOrderID),
		MemberName:       m.MemberName,
		MemberEmail:      m.MemberEmail,
		MemberPhone:      deref(m.MemberPhone),
		ContributorType:  domain.ContributorType(m.ContributorType),
		MeetingDay:       deref(m.MeetingDay),
		GroupName:        deref(m.GroupName),
		GroupID:          derefInt64(m.GroupID),
		Amount:           m.Amount,
		Currency:         m.Currency,
		ContributionDate: m.ContributionDate,
		PayPalStatus:     deref(m.PayPalStatus),
		CustomNotes:      deref(m.CustomNotes),
		IPAddress:        deref(m.IPAddress),
		UserAgent:        deref(m.UserAgent),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToDomainContributionSlice converts a slice of models to domain values.
func ToDomainContributionSlice(ms []models.Contribution) []domain.Contribution {
	ds := make([]domain.Contribution, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainContribution(m)
	}
	return ds
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt64(n int64) *int64 {
	if n == 0 {
		return nil
	}
	return &n
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt64(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
