package dto

// PedidoItemInput is one order line as sent by the client. Nombre and Precio
// are optional denormalized copies kept on the stored line.
type PedidoItemInput struct {
	ID       string  `mapstructure:"id" validate:"required"`
	Cantidad int     `mapstructure:"cantidad" validate:"required,gt=0"`
	Nombre   string  `mapstructure:"nombre"`
	Precio   float64 `mapstructure:"precio"`
}

// PedidoInput covers nuevoPedido and actualizarPedido. On update, a nil
// Pedido slice means "line items unchanged" and skips stock reservation.
type PedidoInput struct {
	Pedido  []PedidoItemInput `mapstructure:"pedido" validate:"omitempty,dive"`
	Total   *float64          `mapstructure:"total"`
	Cliente string            `mapstructure:"cliente" validate:"required"`
	Estado  string            `mapstructure:"estado" validate:"omitempty,oneof=PENDIENTE COMPLETADO CANCELADO"`
}

type PedidoItemResponse struct {
	ID       string  `json:"id"`
	Cantidad int     `json:"cantidad"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
}

type PedidoResponse struct {
	ID       string               `json:"id"`
	Pedido   []PedidoItemResponse `json:"pedido"`
	Total    float64              `json:"total"`
	Cliente  *ClienteResponse     `json:"cliente"`
	Vendedor string               `json:"vendedor"`
	Fecha    string               `json:"fecha"`
	Estado   string               `json:"estado"`
}

// TopClienteResponse mirrors the shape of the sales ranking: the joined
// cliente comes back as a list, empty when the referenced document is gone.
type TopClienteResponse struct {
	Total   float64           `json:"total"`
	Cliente []ClienteResponse `json:"cliente"`
}

type TopVendedorResponse struct {
	Total    float64           `json:"total"`
	Vendedor []UsuarioResponse `json:"vendedor"`
}
