package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	portsrepo "github.com/computeralex/seventh-traditioner/internal/core/ports/repositories"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/shopspring/decimal"
)

const defaultListPerPage = 20

// ContributionService owns the save pipeline and the admin read/clear
// operations over stored contributions.
type ContributionService struct {
	repo            portsrepo.ContributionRepository
	currency        portssvc.CurrencySvcFacade
	meetings        portssvc.MeetingSvcFacade
	receipts        portssvc.ReceiptSvcFacade
	captcha         portssvc.CaptchaVerifier
	logger          *slog.Logger
	formTokenCheck  func(token string) bool
	captchaRequired bool
}

// NewContributionService wires the save pipeline. formTokenCheck validates
// the anti-replay token minted for the public form; captchaRequired is false
// when no captcha keys are configured, which skips verification entirely the
// way the original did without a site key.
func NewContributionService(
	repo portsrepo.ContributionRepository,
	currency portssvc.CurrencySvcFacade,
	meetings portssvc.MeetingSvcFacade,
	receipts portssvc.ReceiptSvcFacade,
	captcha portssvc.CaptchaVerifier,
	logger *slog.Logger,
	formTokenCheck func(token string) bool,
	captchaRequired bool,
) *ContributionService {
	return &ContributionService{
		repo:            repo,
		currency:        currency,
		meetings:        meetings,
		receipts:        receipts,
		captcha:         captcha,
		logger:          logger,
		formTokenCheck:  formTokenCheck,
		captchaRequired: captchaRequired,
	}
}

// SaveContribution validates, deduplicates and persists one submission, then
// sends the receipt email best-effort. The checks run in a fixed order so a
// submission failing several rules always gets the same message back.
func (s *ContributionService) SaveContribution(ctx context.Context, req dto.SaveContributionRequest, meta portssvc.SubmissionMeta) (*domain.Contribution, error) {
	if !s.formTokenCheck(req.FormToken) {
		return nil, fmt.Errorf("%w: security verification failed, please refresh the page and try again", apperrors.ErrValidation)
	}

	if s.captchaRequired {
		ok, err := s.captcha.Verify(ctx, req.RecaptchaToken, meta.IPAddress)
		if err != nil {
			s.logger.Error("Captcha verification errored", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: security verification failed, please try again", apperrors.ErrValidation)
		}
		if !ok {
			return nil, fmt.Errorf("%w: security verification failed, please try again", apperrors.ErrValidation)
		}
	}

	contribution, err := s.normalizeContribution(req)
	if err != nil {
		return nil, err
	}

	// Pre-check for a friendly replay message. The unique index on the
	// transaction id is what actually guarantees idempotency; a racing
	// duplicate surfaces as ErrDuplicate from the insert below.
	existing, err := s.repo.FindContributionByExternalID(ctx, contribution.TransactionID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing transaction: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: this transaction has already been processed", apperrors.ErrDuplicate)
	}

	// Resolve the group name from the directory when only an id was given.
	if contribution.GroupName == "" && contribution.GroupID != 0 {
		name, err := s.meetings.GroupNameByID(ctx, contribution.GroupID)
		if err != nil {
			s.logger.Warn("Group name lookup failed", slog.Int64("group_id", contribution.GroupID), slog.String("error", err.Error()))
		} else {
			contribution.GroupName = name
		}
	}

	contribution.IPAddress = meta.IPAddress
	contribution.UserAgent = meta.UserAgent

	id, err := s.repo.SaveContribution(ctx, *contribution)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: this transaction has already been processed", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save contribution: %w", err)
	}
	contribution.ID = id
	contribution.CreatedAt = time.Now()

	// Receipt delivery never blocks the save; the payment is already captured.
	if err := s.receipts.SendReceipt(ctx, contribution); err != nil {
		s.logger.Warn("Failed to send receipt email",
			slog.Int64("contribution_id", id),
			slog.String("error", err.Error()),
		)
	}

	return contribution, nil
}

// GetContributionByID retrieves one contribution for the admin detail view.
func (s *ContributionService) GetContributionByID(ctx context.Context, id int64) (*domain.Contribution, error) {
	contribution, err := s.repo.FindContributionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contribution %d: %w", id, err)
	}
	return contribution, nil
}

// ListContributions returns a filtered, paged admin listing with per-currency
// totals over the full match set.
func (s *ContributionService) ListContributions(ctx context.Context, params dto.ListContributionsParams) (*dto.ListContributionsResponse, error) {
	filter, page, perPage, err := buildListFilter(params)
	if err != nil {
		return nil, err
	}

	contributions, total, err := s.repo.ListContributions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	totals, err := s.repo.SumAmountsByCurrency(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to total contributions: %w", err)
	}
	if totals == nil {
		totals = map[string]decimal.Decimal{}
	}

	items := make([]dto.ContributionResponse, len(contributions))
	for i := range contributions {
		c := &contributions[i]
		items[i] = dto.ToContributionResponse(c, s.currency.FormatAmount(c.Amount, c.Currency))
	}

	totalPages := (total + perPage - 1) / perPage
	return &dto.ListContributionsResponse{
		Contributions: items,
		TotalCount:    total,
		TotalPages:    totalPages,
		Page:          page,
		PerPage:       perPage,
		TotalAmounts:  totals,
	}, nil
}

// ClearAllContributions deletes every stored record. The handler has already
// checked the typed confirmation phrase.
func (s *ContributionService) ClearAllContributions(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAllContributions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear contributions: %w", err)
	}
	s.logger.Info("All contributions cleared", slog.Int64("deleted", deleted))
	return deleted, nil
}

func buildListFilter(params dto.ListContributionsParams) (portsrepo.ContributionListFilter, int, int, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = defaultListPerPage
	}

	filter := portsrepo.ContributionListFilter{
		Search:    params.Search,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	}

	if params.DateFrom != "" {
		from, err := time.Parse("2006-01-02", params.DateFrom)
		if err != nil {
			return filter, 0, 0, fmt.Errorf("%w: invalid date_from", apperrors.ErrValidation)
		}
		filter.DateFrom = &from
	}
	if params.DateTo != "" {
		to, err := time.Parse("2006-01-02", params.DateTo)
		if err != nil {
			return filter, 0, 0, fmt.Errorf("%w: invalid date_to", apperrors.ErrValidation)
		}
		// Make the upper bound inclusive of the named day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &to
	}

	return filter, page, perPage, nil
}
