package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account in the users table
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Do not expose password hash in JSON responses
	Role         string `json:"role"`
}

// TokenResponse is the body returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
