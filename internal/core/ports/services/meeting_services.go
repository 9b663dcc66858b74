package services

import (
	"context"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
)

// MeetingSvcFacade is the read-only view onto the external meeting directory.
type MeetingSvcFacade interface {
	// ListMeetingsByDay returns meetings on the given weekday (0=Sunday).
	ListMeetingsByDay(ctx context.Context, day int) ([]domain.Meeting, error)

	// ListGroups returns the distinct groups, sorted alphabetically.
	ListGroups(ctx context.Context) ([]domain.Group, error)

	// GroupNameByID resolves a group id to its name; empty string when the
	// directory does not know the id.
	GroupNameByID(ctx context.Context, groupID int64) (string, error)
}
