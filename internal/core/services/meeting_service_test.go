package services_test

import (
	"context"
	"testing"

	"github.com/computeralex/seventh-traditioner/internal/core/domain"
	"github.com/computeralex/seventh-traditioner/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	meetings []domain.Meeting
	err      error
}

func (s *stubDirectory) Meetings(ctx context.Context) ([]domain.Meeting, error) {
	return s.meetings, s.err
}

func directoryFixture() *stubDirectory {
	return &stubDirectory{meetings: []domain.Meeting{
		{ID: 1, Name: "Morning Light", Day: 0, Time: "09:00", Group: "Serenity Group", GroupID: 10},
		{ID: 2, Name: "Evening Hope", Day: 0, Time: "19:30", Group: "Hope Group", GroupID: 11},
		{ID: 3, Name: "Midweek", Day: 3, Time: "18:00", Group: "Serenity Group", GroupID: 10},
		{ID: 4, Name: "No Group Listed", Day: 3, Time: "20:00"},
	}}
}

func TestListMeetingsByDay(t *testing.T) {
	svc := services.NewMeetingService(directoryFixture())

	sunday, err := svc.ListMeetingsByDay(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, sunday, 2)
	assert.Equal(t, "Morning Light", sunday[0].Name) // sorted by time
	assert.Equal(t, "Evening Hope", sunday[1].Name)

	saturday, err := svc.ListMeetingsByDay(context.Background(), 6)
	require.NoError(t, err)
	assert.Empty(t, saturday)
}

func TestListGroupsDistinctAndSorted(t *testing.T) {
	svc := services.NewMeetingService(directoryFixture())

	groups, err := svc.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Hope Group", groups[0].Name)
	assert.Equal(t, "Serenity Group", groups[1].Name)
}

func TestGroupNameByID(t *testing.T) {
	svc := services.NewMeetingService(directoryFixture())

	name, err := svc.GroupNameByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "Hope Group", name)

	name, err = svc.GroupNameByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, name)

	name, err = svc.GroupNameByID(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, name)
}
