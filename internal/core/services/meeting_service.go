package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
)

// MeetingDirectory supplies the raw meeting list from the external feed.
type MeetingDirectory interface {
	Meetings(ctx context.Context) ([]domain.Meeting, error)
}

// MeetingService answers day and group lookups against the meeting directory.
type MeetingService struct {
	directory MeetingDirectory
}

// NewMeetingService creates a MeetingService.
func NewMeetingService(directory MeetingDirectory) *MeetingService {
	return &MeetingService{directory: directory}
}

// ListMeetingsByDay returns meetings on the given weekday (0=Sunday).
func (s *MeetingService) ListMeetingsByDay(ctx context.Context, day int) ([]domain.Meeting, error) {
	all, err := s.directory.Meetings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	matched := make([]domain.Meeting, 0)
	for _, m := range all {
		if m.Day == day {
			matched = append(matched, m)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Time != matched[j].Time {
			return matched[i].Time < matched[j].Time
		}
		return matched[i].Name < matched[j].Name
	})
	return matched, nil
}

// ListGroups returns the distinct groups named in the directory, sorted
// alphabetically. Meetings without a group id are skipped.
func (s *MeetingService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	all, err := s.directory.Meetings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	seen := make(map[int64]string)
	for _, m := range all {
		if m.GroupID == 0 || m.Group == "" {
			continue
		}
		if _, ok := seen[m.GroupID]; !ok {
			seen[m.GroupID] = m.Group
		}
	}

	groups := make([]domain.Group, 0, len(seen))
	for id, name := range seen {
		groups = append(groups, domain.Group{ID: id, Name: name})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}

// GroupNameByID resolves a group id to its name. Returns the empty string
// when the directory does not know the id.
func (s *MeetingService) GroupNameByID(ctx context.Context, groupID int64) (string, error) {
	if groupID == 0 {
		return "", nil
	}
	all, err := s.directory.Meetings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve group name: %w", err)
	}
	for _, m := range all {
		if m.GroupID == groupID && m.Group != "" {
			return m.Group, nil
		}
	}
	return "", nil
}
