package services

import (
	"context"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/computeralex/seventh-traditioner/internal/dto"
)

// SubmissionMeta is request metadata recorded alongside a contribution.
type SubmissionMeta struct {
	IPAddress string
	UserAgent string
}

// ContributionWriterSvc defines the save pipeline for contributions.
type ContributionWriterSvc interface {
	// SaveContribution validates, deduplicates and persists one submission,
	// then triggers the best-effort receipt email. Validation failures wrap
	// apperrors.ErrValidation; replays wrap apperrors.ErrDuplicate.
	SaveContribution(ctx context.Context, req dto.SaveContributionRequest, meta SubmissionMeta) (*domain.Contribution, error)
}

// ContributionReaderSvc defines admin read operations.
type ContributionReaderSvc interface {
	GetContributionByID(ctx context.Context, id int64) (*domain.Contribution, error)
	ListContributions(ctx context.Context, params dto.ListContributionsParams) (*dto.ListContributionsResponse, error)
}

// ContributionAdminSvc defines destructive admin operations.
type ContributionAdminSvc interface {
	// ClearAllContributions deletes every record. Callers must have already
	// checked the typed confirmation phrase.
	ClearAllContributions(ctx context.Context) (int64, error)
}

// ContributionSvcFacade combines all contribution-related service interfaces.
type ContributionSvcFacade interface {
	ContributionWriterSvc
	ContributionReaderSvc
	ContributionAdminSvc
}
