package repositories

import (
	"context"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ContributionListFilter narrows and orders the admin contribution listing.
type ContributionListFilter struct {
	Search    string // matches name, email, group name, transaction id
	DateFrom  *time.Time
	DateTo    *time.Time
	SortBy    string // "date", "amount" or "name"
	SortOrder string // "ASC" or "DESC"
	Limit     int
	Offset    int
}

// ContributionRepository owns the contributions table. Records are
// insert-only; the sole delete path is the administrative clear-all.
type ContributionRepository interface {
	// SaveContribution inserts a new record and returns its id. A unique
	// violation on the transaction id surfaces as apperrors.ErrDuplicate;
	// the storage-level constraint, not the pre-check, is the real
	// idempotency guarantee.
	SaveContribution(ctx context.Context, contribution domain.Contribution) (int64, error)

	// FindContributionByID retrieves a record by primary key.
	FindContributionByID(ctx context.Context, id int64) (*domain.Contribution, error)

	// FindContributionByExternalID looks a record up by its payment-processor
	// identifier, matching either the canonical transaction id or the legacy
	// order-id alias. Returns apperrors.ErrNotFound when absent.
	FindContributionByExternalID(ctx context.Context, externalID string) (*domain.Contribution, error)

	// ListContributions returns a filtered page plus the total match count.
	ListContributions(ctx context.Context, filter ContributionListFilter) ([]domain.Contribution, int, error)

	// SumAmountsByCurrency totals the matching contributions per currency.
	SumAmountsByCurrency(ctx context.Context, filter ContributionListFilter) (map[string]decimal.Decimal, error)

	// DeleteAllContributions wipes the table and reports the rows removed.
	DeleteAllContributions(ctx context.Context) (int64, error)
}
