package dto

type RegisterRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type CheckLoginResponseDTO struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
}

type LogoutResponseDTO struct {
	Message string `json:"message"`
}
