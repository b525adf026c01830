package graph

import (
	"github.com/larturi/crm-graphql-go/internal/dto"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) obtenerPedidos(p graphql.ResolveParams) (interface{}, error) {
	return r.pedidos.Listar(p.Context)
}

func (r *Resolver) obtenerPedidosVendedor(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	return r.pedidos.ListarPorVendedor(p.Context, caller)
}

func (r *Resolver) obtenerPedido(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)
	return r.pedidos.ObtenerPorID(p.Context, caller, id)
}

func (r *Resolver) obtenerPedidosEstado(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	estado, _ := p.Args["estado"].(string)
	return r.pedidos.ListarPorEstado(p.Context, caller, estado)
}

func (r *Resolver) nuevoPedido(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	var input dto.PedidoInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.pedidos.Crear(p.Context, caller, input)
}

func (r *Resolver) actualizarPedido(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)
	var input dto.PedidoInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.pedidos.Actualizar(p.Context, caller, id, input)
}

func (r *Resolver) eliminarPedido(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)
	return r.pedidos.Eliminar(p.Context, caller, id)
}

func (r *Resolver) mejoresClientes(p graphql.ResolveParams) (interface{}, error) {
	return r.analitica.MejoresClientes(p.Context)
}

func (r *Resolver) mejoresVendedores(p graphql.ResolveParams) (interface{}, error) {
	return r.analitica.MejoresVendedores(p.Context)
}
