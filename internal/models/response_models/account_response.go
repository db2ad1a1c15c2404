package response_models

import "time"

type AccountSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string         `json:"token"`
	User  AccountSummary `json:"user"`
}

type ProfileResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Preferences []string  `json:"preferences"`
	CreatedAt   time.Time `json:"createdAt"`
}
