package graph

import (
	"github.com/larturi/crm-graphql-go/internal/dto"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) obtenerClientes(p graphql.ResolveParams) (interface{}, error) {
	return r.clientes.Listar(p.Context)
}

func (r *Resolver) obtenerClientesVendedor(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	eliminado, _ := p.Args["eliminado"].(bool)
	return r.clientes.ListarPorVendedor(p.Context, caller, eliminado)
}

func (r *Resolver) obtenerCliente(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)
	return r.clientes.ObtenerPorID(p.Context, caller, id)
}

func (r *Resolver) nuevoCliente(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	var input dto.ClienteInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.clientes.Crear(p.Context, caller, input)
}

func (r *Resolver) actualizarCliente(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)
	var input dto.ClienteInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.clientes.Actualizar(p.Context, caller, id, input)
}

func (r *Resolver) eliminarCliente(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	id, _ := p.Args["id"].(string)
	return r.clientes.Eliminar(p.Context, caller, id)
}
