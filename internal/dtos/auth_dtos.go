package dtos

// ----------------------
// Requests
// ----------------------

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ----------------------
// Responses
// ----------------------

type SignupResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type LogoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
