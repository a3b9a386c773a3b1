package dto

// LoginRequest acceso de administrador: un solo secreto compartido.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión con rol admin.
type LoginResponse struct {
	Token string `json:"token"`
}
