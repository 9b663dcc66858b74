package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	portsrepo "github.com/computeralex/seventh-traditioner/internal/core/ports/repositories"
	"github.com/computeralex/seventh-traditioner/internal/models"
	"github.com/computeralex/seventh-traditioner/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

const contributionColumns = `
	id, transaction_id, paypal_order_id, member_name, member_email, member_phone,
	contributor_type, meeting_day, group_name, group_id, amount, currency,
	contribution_date, paypal_status, custom_notes, ip_address, user_agent,
	created_at, updated_at`

// PgxContributionRepository implements ContributionRepository using pgxpool.
type PgxContributionRepository struct {
	BaseRepository
}

// NewPgxContributionRepository creates a new repository for contribution data.
func NewPgxContributionRepository(pool *pgxpool.Pool) *PgxContributionRepository {
	return &PgxContributionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ContributionRepository = (*PgxContributionRepository)(nil)

// SaveContribution inserts a contribution record. The unique index on
// transaction_id is the authoritative duplicate guard; a 23505 from it maps
// to apperrors.ErrDuplicate.
func (r *PgxContributionRepository) SaveContribution(ctx context.Context, contribution domain.Contribution) (int64, error) {
	m := mapping.ToModelContribution(contribution)

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	if m.ContributionDate.IsZero() {
		m.ContributionDate = now
	}

	query := `
		INSERT INTO contributions (
			transaction_id, paypal_order_id, member_name, member_email, member_phone,
			contributor_type, meeting_day, group_name, group_id, amount, currency,
			contribution_date, paypal_status, custom_notes, ip_address, user_agent,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		m.TransactionID,
		m.PayPalOrderID,
		m.MemberName,
		m.MemberEmail,
		m.MemberPhone,
		m.ContributorType,
		m.MeetingDay,
		m.GroupName,
		m.GroupID,
		m.Amount,
		m.Currency,
		m.ContributionDate,
		m.PayPalStatus,
		m.CustomNotes,
		m.IPAddress,
		m.UserAgent,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, fmt.Errorf("transaction %s already recorded: %w", m.TransactionID, apperrors.ErrDuplicate)
		}
		return 0, fmt.Errorf("failed to insert contribution: %w", err)
	}
	return id, nil
}

// FindContributionByID retrieves a contribution by primary key.
func (r *PgxContributionRepository) FindContributionByID(ctx context.Context, id int64) (*domain.Contribution, error) {
	query := `SELECT` + contributionColumns + ` FROM contributions WHERE id = $1;`

	m, err := r.scanOne(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contribution by id %d: %w", id, err)
	}

	d := mapping.ToDomainContribution(*m)
	return &d, nil
}

// FindContributionByExternalID looks up a record by its payment-processor
// identifier. Both columns are checked because older plugin versions stored
// the order id where the transaction id now lives.
func (r *PgxContributionRepository) FindContributionByExternalID(ctx context.Context, externalID string) (*domain.Contribution, error) {
	query := `
		SELECT` + contributionColumns + `
		FROM contributions
		WHERE transaction_id = $1 OR paypal_order_id = $1
		LIMIT 1;
	`

	m, err := r.scanOne(r.Pool.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contribution by external id: %w", err)
	}

	d := mapping.ToDomainContribution(*m)
	return &d, nil
}

// ListContributions returns a filtered, sorted page plus the total count.
func (r *PgxContributionRepository) ListContributions(ctx context.Context, filter portsrepo.ContributionListFilter) ([]domain.Contribution, int, error) {
	baseQuery, args := buildContributionFilter(filter)

	var total int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contributions: %w", err)
	}
	if total == 0 {
		return []domain.Contribution{}, 0, nil
	}

	orderColumn := map[string]string{
		"date":   "contribution_date",
		"amount": "amount",
		"name":   "member_name",
	}[strings.ToLower(filter.SortBy)]
	if orderColumn == "" {
		orderColumn = "contribution_date"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "ASC") {
		direction = "ASC"
	}

	argNum := len(args) + 1
	pageQuery := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		contributionColumns, baseQuery, orderColumn, direction, argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	modelContributions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Contribution, error) {
		return scanContributionRow(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan contributions: %w", err)
	}

	return mapping.ToDomainContributionSlice(modelContributions), total, nil
}

// SumAmountsByCurrency totals matching contributions grouped by currency.
func (r *PgxContributionRepository) SumAmountsByCurrency(ctx context.Context, filter portsrepo.ContributionListFilter) (map[string]decimal.Decimal, error) {
	baseQuery, args := buildContributionFilter(filter)

	rows, err := r.Pool.Query(ctx, "SELECT currency, COALESCE(SUM(amount), 0) "+baseQuery+" GROUP BY currency", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum contributions: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency string
		var sum decimal.Decimal
		if err := rows.Scan(&currency, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan contribution totals: %w", err)
		}
		totals[currency] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contribution totals: %w", err)
	}
	return totals, nil
}

// DeleteAllContributions wipes the contributions table.
func (r *PgxContributionRepository) DeleteAllContributions(ctx context.Context) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM contributions;`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear contributions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func buildContributionFilter(filter portsrepo.ContributionListFilter) (string, []interface{}) {
	baseQuery := `FROM contributions WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.Search != "" {
		baseQuery += fmt.Sprintf(
			" AND (member_name ILIKE $%d OR member_email ILIKE $%d OR group_name ILIKE $%d OR transaction_id ILIKE $%d)",
			argNum, argNum, argNum, argNum)
		args = append(args, "%"+filter.Search+"%")
		argNum++
	}
	if filter.DateFrom != nil {
		baseQuery += fmt.Sprintf(" AND contribution_date >= $%d", argNum)
		args = append(args, *filter.DateFrom)
		argNum++
	}
	if filter.DateTo != nil {
		baseQuery += fmt.Sprintf(" AND contribution_date <= $%d", argNum)
		args = append(args, *filter.DateTo)
		argNum++
	}

	return baseQuery, args
}

func (r *PgxContributionRepository) scanOne(row pgx.Row) (*models.Contribution, error) {
	var m models.Contribution
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.PayPalOrderID, &m.MemberName, &m.MemberEmail, &m.MemberPhone,
		&m.ContributorType, &m.MeetingDay, &m.GroupName, &m.GroupID, &m.Amount, &m.Currency,
		&m.ContributionDate, &m.PayPalStatus, &m.CustomNotes, &m.IPAddress, &m.UserAgent,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanContributionRow(row pgx.CollectableRow) (models.Contribution, error) {
	var m models.Contribution
	err := row.Scan(
		&m.ID, &m.TransactionID, &m.PayPalOrderID, &m.MemberName, &m.MemberEmail, &m.MemberPhone,
		&m.ContributorType, &m.MeetingDay, &m.GroupName, &m.GroupID, &m.Amount, &m.Currency,
		&m.ContributionDate, &m.PayPalStatus, &m.CustomNotes, &m.IPAddress, &m.UserAgent,
		&m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
