package dto

// LoginRequest credenciales de acceso. RememberMe extiende la vida del token.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// LoginResponse token firmado más el rol para que el cliente arme su vista.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// SessionResponse estado de la sesión según el token presentado.
type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   string `json:"user_id,omitempty"`
	Role     string `json:"role,omitempty"`
}
