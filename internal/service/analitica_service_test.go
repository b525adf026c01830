package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/larturi/crm-graphql-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type analiticaFixture struct {
	usuarios  *stubUsuarioRepo
	productos *stubProductoRepo
	clientes  *stubClienteRepo
	pedidos   *stubPedidoRepo
	svc       AnaliticaService
}

func newAnaliticaFixture() *analiticaFixture {
	f := &analiticaFixture{
		usuarios:  newStubUsuarioRepo(),
		productos: newStubProductoRepo(),
		clientes:  newStubClienteRepo(),
		pedidos:   newStubPedidoRepo(),
	}
	f.svc = NewAnaliticaService(f.pedidos, f.clientes, f.usuarios, f.productos)
	return f
}

func (f *analiticaFixture) seedVendedor(email string) primitive.ObjectID {
	u := &model.Usuario{
		ID:     primitive.NewObjectID(),
		Nombre: "Vendedor", Apellido: "Test", Email: email,
	}
	f.usuarios.usuarios = append(f.usuarios.usuarios, u)
	return u.ID
}

func TestMejoresClientesSoloCompletados(t *testing.T) {
	f := newAnaliticaFixture()
	vendedor := primitive.NewObjectID()
	c := seedCliente(f.clientes, "Pedro", "pedro@x.com", vendedor)

	seedPedido(f.pedidos, c.ID, vendedor, 100, model.EstadoCompletado)
	seedPedido(f.pedidos, c.ID, vendedor, 999, model.EstadoPendiente)
	seedPedido(f.pedidos, c.ID, vendedor, 999, model.EstadoCancelado)

	top, err := f.svc.MejoresClientes(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 100.0, top[0].Total, "solo los pedidos COMPLETADO suman")
}

func TestMejoresClientesSumaYOrdena(t *testing.T) {
	f := newAnaliticaFixture()
	vendedor := primitive.NewObjectID()
	c1 := seedCliente(f.clientes, "Uno", "uno@x.com", vendedor)
	c2 := seedCliente(f.clientes, "Dos", "dos@x.com", vendedor)

	seedPedido(f.pedidos, c1.ID, vendedor, 50, model.EstadoCompletado)
	seedPedido(f.pedidos, c2.ID, vendedor, 120, model.EstadoCompletado)
	seedPedido(f.pedidos, c1.ID, vendedor, 40, model.EstadoCompletado)

	top, err := f.svc.MejoresClientes(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 120.0, top[0].Total)
	require.Len(t, top[0].Cliente, 1)
	assert.Equal(t, "Dos", top[0].Cliente[0].Nombre)
	assert.Equal(t, 90.0, top[1].Total, "los pedidos del mismo cliente se acumulan")
}

func TestMejoresClientesEmpateConservaOrden(t *testing.T) {
	f := newAnaliticaFixture()
	vendedor := primitive.NewObjectID()
	c1 := seedCliente(f.clientes, "Primero", "p1@x.com", vendedor)
	c2 := seedCliente(f.clientes, "Segundo", "p2@x.com", vendedor)

	seedPedido(f.pedidos, c1.ID, vendedor, 80, model.EstadoCompletado)
	seedPedido(f.pedidos, c2.ID, vendedor, 80, model.EstadoCompletado)

	top, err := f.svc.MejoresClientes(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Primero", top[0].Cliente[0].Nombre)
	assert.Equal(t, "Segundo", top[1].Cliente[0].Nombre)
}

func TestMejoresClientesReferenciaColgante(t *testing.T) {
	f := newAnaliticaFixture()
	vendedor := primitive.NewObjectID()
	seedPedido(f.pedidos, primitive.NewObjectID(), vendedor, 70, model.EstadoCompletado)

	top, err := f.svc.MejoresClientes(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 70.0, top[0].Total)
	assert.Empty(t, top[0].Cliente, "un cliente inexistente deja la lista vacia")
}

func TestMejoresVendedoresLimiteTres(t *testing.T) {
	f := newAnaliticaFixture()
	for i := 0; i < 5; i++ {
		v := f.seedVendedor(fmt.Sprintf("v%d@x.com", i))
		c := seedCliente(f.clientes, "Cliente", fmt.Sprintf("c%d@x.com", i), v)
		seedPedido(f.pedidos, c.ID, v, float64(100-i*10), model.EstadoCompletado)
	}

	top, err := f.svc.MejoresVendedores(context.Background())
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 100.0, top[0].Total)
	assert.Equal(t, 90.0, top[1].Total)
	assert.Equal(t, 80.0, top[2].Total)
	require.Len(t, top[0].Vendedor, 1)
	assert.Equal(t, "v0@x.com", top[0].Vendedor[0].Email)
}

func TestMejoresVendedoresSinPedidos(t *testing.T) {
	f := newAnaliticaFixture()

	top, err := f.svc.MejoresVendedores(context.Background())
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestBuscarProductos(t *testing.T) {
	f := newAnaliticaFixture()
	seedProducto(f.productos, "Monitor 24 pulgadas", 5, 150)
	seedProducto(f.productos, "Monitor 27 pulgadas", 3, 220)
	seedProducto(f.productos, "Teclado mecanico", 8, 60)

	res, err := f.svc.BuscarProductos(context.Background(), "monitor")
	require.NoError(t, err)
	assert.Len(t, res, 2)

	res, err = f.svc.BuscarProductos(context.Background(), "mouse")
	require.NoError(t, err)
	assert.Empty(t, res)
}
