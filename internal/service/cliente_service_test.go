package service

import (
	"context"
	"testing"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCrearClienteEstampaVendedor(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	vendedor := primitive.NewObjectID()

	c, err := svc.Crear(context.Background(), vendedor.Hex(), dto.ClienteInput{
		Nombre:   "Pedro",
		Apellido: "Gomez",
		Empresa:  "Acme",
		Email:    "pedro@acme.com",
	})

	require.NoError(t, err)
	assert.Equal(t, vendedor.Hex(), c.Vendedor)
}

func TestCrearClienteDuplicado(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	vendedor := primitive.NewObjectID().Hex()

	input := dto.ClienteInput{Nombre: "Pedro", Apellido: "Gomez", Empresa: "Acme", Email: "pedro@acme.com"}
	_, err := svc.Crear(context.Background(), vendedor, input)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), vendedor, input)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindAlreadyExists))
}

func TestObtenerClienteAjenoDenegado(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	duenio := primitive.NewObjectID()
	otro := primitive.NewObjectID()
	c := seedCliente(repo, "Pedro", "pedro@acme.com", duenio)

	_, err := svc.ObtenerPorID(context.Background(), otro.Hex(), c.ID.Hex())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	got, err := svc.ObtenerPorID(context.Background(), duenio.Hex(), c.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, c.Email, got.Email)
}

func TestActualizarClienteAjenoDenegado(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	duenio := primitive.NewObjectID()
	otro := primitive.NewObjectID()
	c := seedCliente(repo, "Pedro", "pedro@acme.com", duenio)

	_, err := svc.Actualizar(context.Background(), otro.Hex(), c.ID.Hex(), dto.ClienteInput{
		Nombre: "X", Apellido: "Y", Empresa: "Z", Email: "x@z.com",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	assert.Equal(t, "Pedro", c.Nombre, "el cliente no debe modificarse")
}

func TestEliminarClienteEsSoftDelete(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	duenio := primitive.NewObjectID()
	c := seedCliente(repo, "Pedro", "pedro@acme.com", duenio)

	msg, err := svc.Eliminar(context.Background(), duenio.Hex(), c.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Cliente Eliminado", msg)

	// El documento sigue existiendo, solo marcado.
	assert.True(t, c.Eliminado)
	listado, err := svc.ListarPorVendedor(context.Background(), duenio.Hex(), true)
	require.NoError(t, err)
	assert.Len(t, listado, 1)
}

func TestListarPorVendedorFiltraEnConsulta(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	seedCliente(repo, "Uno", "uno@x.com", a)
	seedCliente(repo, "Dos", "dos@x.com", a)
	seedCliente(repo, "Tres", "tres@x.com", b)

	deA, err := svc.ListarPorVendedor(context.Background(), a.Hex(), false)
	require.NoError(t, err)
	assert.Len(t, deA, 2)

	deB, err := svc.ListarPorVendedor(context.Background(), b.Hex(), false)
	require.NoError(t, err)
	assert.Len(t, deB, 1)
}
