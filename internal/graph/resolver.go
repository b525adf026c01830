package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/middleware"
	"github.com/larturi/crm-graphql-go/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/graphql-go/graphql"
	"github.com/mitchellh/mapstructure"
)

var validate = validator.New()

// Resolver holds the domain services every field dispatches to.
// The caller identity is extracted from the request context at this boundary
// and threaded into the services as an explicit parameter — services never
// look at the context for identity themselves.
type Resolver struct {
	auth      service.AuthService
	productos service.ProductoService
	clientes  service.ClienteService
	pedidos   service.PedidoService
	analitica service.AnaliticaService
}

func NewResolver(
	auth service.AuthService,
	productos service.ProductoService,
	clientes service.ClienteService,
	pedidos service.PedidoService,
	analitica service.AnaliticaService,
) *Resolver {
	return &Resolver{
		auth:      auth,
		productos: productos,
		clientes:  clientes,
		pedidos:   pedidos,
		analitica: analitica,
	}
}

// callerID returns the authenticated vendedor id or an Unauthorized error for
// requests whose context carries no verified claims.
func callerID(p graphql.ResolveParams) (string, error) {
	claims, ok := middleware.ClaimsFromContext(p.Context)
	if !ok {
		return "", apperror.Unauthorized("Autenticacion requerida")
	}
	return claims.UserID, nil
}

// decodeInput maps the GraphQL argument under key into dst and runs the
// presence checks declared on the dto struct.
func decodeInput(p graphql.ResolveParams, key string, dst interface{}) error {
	raw, ok := p.Args[key]
	if !ok || raw == nil {
		return apperror.Invalid("Input requerido")
	}
	if err := mapstructure.Decode(raw, dst); err != nil {
		return apperror.Invalid("Input invalido")
	}
	if err := validate.Struct(dst); err != nil {
		fields := make([]string, 0)
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
		sort.Strings(fields)
		return apperror.Invalid("Error de validacion: " + strings.Join(fields, ", "))
	}
	return nil
}
