package dto

import "github.com/computeralex/seventh-traditioner/internal/core/domain"

// MeetingResponse is one directory meeting as shown in the form dropdown.
type MeetingResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Day     int    `json:"day"`
	DayName string `json:"dayName"`
	Time    string `json:"time,omitempty"`
	Group   string `json:"group,omitempty"`
	GroupID int64  `json:"groupID,omitempty"`
	Region  string `json:"region,omitempty"`
}

// ToMeetingResponse converts a domain Meeting.
func ToMeetingResponse(m domain.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:      m.ID,
		Name:    m.Name,
		Day:     m.Day,
		DayName: domain.WeekdayName(m.Day),
		Time:    m.Time,
		Group:   m.Group,
		GroupID: m.GroupID,
		Region:  m.Region,
	}
}

// ToMeetingResponseSlice converts a slice of meetings.
func ToMeetingResponseSlice(ms []domain.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, len(ms))
	for i, m := range ms {
		out[i] = ToMeetingResponse(m)
	}
	return out
}

// GroupResponse is one directory group.
type GroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToGroupResponseSlice converts a slice of groups.
func ToGroupResponseSlice(gs []domain.Group) []GroupResponse {
	out := make([]GroupResponse, len(gs))
	for i, g := range gs {
		out[i] = GroupResponse{ID: g.ID, Name: g.Name}
	}
	return out
}
