package graph

import (
	"github.com/larturi/crm-graphql-go/internal/dto"

	"github.com/graphql-go/graphql"
)

func (r *Resolver) obtenerUsuario(p graphql.ResolveParams) (interface{}, error) {
	caller, err := callerID(p)
	if err != nil {
		return nil, err
	}
	return r.auth.ObtenerUsuario(p.Context, caller)
}

func (r *Resolver) nuevoUsuario(p graphql.ResolveParams) (interface{}, error) {
	var input dto.UsuarioInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.auth.CrearUsuario(p.Context, input)
}

func (r *Resolver) autenticarUsuario(p graphql.ResolveParams) (interface{}, error) {
	var input dto.AutenticarInput
	if err := decodeInput(p, "input", &input); err != nil {
		return nil, err
	}
	return r.auth.Autenticar(p.Context, input)
}
