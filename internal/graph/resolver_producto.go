package graph

import (
	"github.com/larturi/crm-graphql-go/internal/dto"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) obtenerProductos(p graphql.ResolveParams) (interface{}, error) {
	eliminado, _ := p.Args["eliminado"].(bool)
	return r.productos.Listar(p.Context, eliminado)
}

func (r *Resolver) obtenerProducto(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	return r.productos.ObtenerPorID(p.Context, id)
}

func (r *Resolver) buscarProducto(p graphql.ResolveParams) (interface{}, error) {
	texto, _ := p.Args["texto"].(string)
	return r.analitica.BuscarProductos(p.Context, texto)
}

func (r *Resolver) nuevoProducto(p graphql.ResolveParams) (interface{}, error) {
	var input dto.ProductoInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.productos.Crear(p.Context, input)
}

func (r *Resolver) actualizarProducto(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	var input dto.ProductoInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.productos.Actualizar(p.Context, id, input)
}

func (r *Resolver) eliminarProducto(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	return r.productos.Eliminar(p.Context, id)
}
