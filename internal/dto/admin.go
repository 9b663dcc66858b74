package dto

// TestEmailRequest asks for a sample receipt at the given address.
type TestEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ClearContributionsRequest gates the destructive clear-all action behind a
// typed confirmation phrase, as the original settings page did.
type ClearContributionsRequest struct {
	Confirm string `json:"confirm" binding:"required,eq=DELETE"`
}

// ClearContributionsResponse reports how many records were removed.
type ClearContributionsResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}
