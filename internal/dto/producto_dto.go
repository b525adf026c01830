package dto

// ProductoInput covers both nuevoProducto and actualizarProducto. Stock and
// Precio are pointers so that a literal 0 passes the presence check.
type ProductoInput struct {
	Nombre    string   `mapstructure:"nombre" validate:"required"`
	Stock     *int     `mapstructure:"stock" validate:"required,min=0"`
	Precio    *float64 `mapstructure:"precio" validate:"required,min=0"`
	Eliminado *bool    `mapstructure:"eliminado"`
}

type ProductoResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Stock     int     `json:"stock"`
	Precio    float64 `json:"precio"`
	Creado    string  `json:"creado"`
	Eliminado bool    `json:"eliminado"`
}
