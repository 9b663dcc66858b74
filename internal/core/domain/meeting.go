package domain

// Meeting is one recurring meeting from the external meeting directory
// (a TSML-compatible feed). The directory is read-only from our side.
type Meeting struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Day     int    `json:"day"` // 0=Sunday .. 6=Saturday, TSML numbering
	Time    string `json:"time,omitempty"`
	Group   string `json:"group,omitempty"`
	GroupID int64  `json:"groupID,omitempty"`
	Region  string `json:"region,omitempty"`
}

// Group is a named group from the meeting directory.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WeekdayName converts a TSML day number to its English name. Unknown
// numbers return the empty string, matching the original lookup.
func WeekdayName(day int) string {
	names := [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day < 0 || day > 6 {
		return ""
	}
	return names[day]
}
