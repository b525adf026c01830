package dto

// UsuarioInput is the registration payload (mutation nuevoUsuario).
type UsuarioInput struct {
	Nombre   string `mapstructure:"nombre" validate:"required"`
	Apellido string `mapstructure:"apellido" validate:"required"`
	Email    string `mapstructure:"email" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

// AutenticarInput is the login payload (mutation autenticarUsuario).
type AutenticarInput struct {
	Email    string `mapstructure:"email" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
}

type UsuarioResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Creado   string `json:"creado"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
