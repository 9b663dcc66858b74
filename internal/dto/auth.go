package dto

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the admin bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}

// FormTokenResponse returns a fresh anti-replay token for the public form.
type FormTokenResponse struct {
	Token string `json:"token"`
}
