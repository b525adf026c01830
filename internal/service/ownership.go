package service

import (
	"github.com/larturi/crm-graphql-go/internal/apperror"
)

// VerificarPropietario is the single ownership gate for clientes and pedidos:
// only the vendedor that created an entity may read or mutate it. The
// comparison is string-exact on the hex ids. List queries do not go through
// here — they filter by vendedor at the query level instead.
func VerificarPropietario(ownerID, callerID string) error {
	if ownerID != callerID {
		return apperror.Unauthorized("No tienes las credenciales")
	}
	return nil
}
