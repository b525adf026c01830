package service

import (
	"github.com/larturi/crm-graphql-go/internal/dto"
	"github.com/larturi/crm-graphql-go/internal/model"
)

const fechaFormat = "2006-01-02T15:04:05Z"

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:       u.ID.Hex(),
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Creado:   u.Creado.Format(fechaFormat),
	}
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:        p.ID.Hex(),
		Nombre:    p.Nombre,
		Stock:     p.Stock,
		Precio:    p.Precio,
		Creado:    p.Creado.Format(fechaFormat),
		Eliminado: p.Eliminado,
	}
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID.Hex(),
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Empresa:   c.Empresa,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Vendedor:  c.Vendedor.Hex(),
		Creado:    c.Creado.Format(fechaFormat),
		Eliminado: c.Eliminado,
	}
}

func pedidoToResponse(p *model.Pedido, cliente *model.Cliente) *dto.PedidoResponse {
	items := make([]dto.PedidoItemResponse, 0, len(p.Pedido))
	for _, item := range p.Pedido {
		items = append(items, dto.PedidoItemResponse{
			ID:       item.ID.Hex(),
			Cantidad: item.Cantidad,
			Nombre:   item.Nombre,
			Precio:   item.Precio,
		})
	}
	resp := &dto.PedidoResponse{
		ID:       p.ID.Hex(),
		Pedido:   items,
		Total:    p.Total,
		Vendedor: p.Vendedor.Hex(),
		Fecha:    p.Creado.Format(fechaFormat),
		Estado:   p.Estado,
	}
	if cliente != nil {
		resp.Cliente = clienteToResponse(cliente)
	}
	return resp
}
