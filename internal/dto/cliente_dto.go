package dto

// ClienteInput covers both nuevoCliente and actualizarCliente.
type ClienteInput struct {
	Nombre    string `mapstructure:"nombre" validate:"required"`
	Apellido  string `mapstructure:"apellido" validate:"required"`
	Empresa   string `mapstructure:"empresa" validate:"required"`
	Email     string `mapstructure:"email" validate:"required"`
	Telefono  string `mapstructure:"telefono"`
	Eliminado *bool  `mapstructure:"eliminado"`
}

type ClienteResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Empresa   string `json:"empresa"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Vendedor  string `json:"vendedor"`
	Creado    string `json:"creado"`
	Eliminado bool   `json:"eliminado"`
}
