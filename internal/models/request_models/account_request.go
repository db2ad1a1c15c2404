package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUpRequest carries no binding rules; the account service reports every
// invalid field at once.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Phone       string     `json:"phone" binding:"max=32"`
	Address     string     `json:"address" binding:"max=500"`
	Preferences FlexString `json:"preferences"`
}
