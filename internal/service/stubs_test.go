package service

import (
	"context"
	"strings"
	"time"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
// Slice-backed so listing order is deterministic (insertion order), matching
// what the tests assert about grouping and ranking.

type stubUsuarioRepo struct {
	usuarios []*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo { return &stubUsuarioRepo{} }

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	u.ID = primitive.NewObjectID()
	u.Creado = time.Now()
	r.usuarios = append(r.usuarios, u)
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperror.NotFound("Usuario no encontrado")
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NotFound("Usuario no encontrado")
}

type stubProductoRepo struct {
	productos []*model.Producto
}

func newStubProductoRepo() *stubProductoRepo { return &stubProductoRepo{} }

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	p.ID = primitive.NewObjectID()
	p.Creado = time.Now()
	r.productos = append(r.productos, p)
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Producto, error) {
	for _, p := range r.productos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NotFound("Producto no encontrado")
}

func (r *stubProductoRepo) List(_ context.Context, eliminado bool) ([]model.Producto, error) {
	out := []model.Producto{}
	for _, p := range r.productos {
		if p.Eliminado == eliminado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(ctx context.Context, p *model.Producto) error {
	existing, err := r.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*existing = *p
	return nil
}

func (r *stubProductoRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Eliminado = true
	return nil
}

func (r *stubProductoRepo) UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) error {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Stock = stock
	return nil
}

func (r *stubProductoRepo) Search(_ context.Context, texto string, limit int64) ([]model.Producto, error) {
	out := []model.Producto{}
	for _, p := range r.productos {
		if strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(texto)) {
			out = append(out, *p)
		}
		if int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

type stubClienteRepo struct {
	clientes []*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo { return &stubClienteRepo{} }

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	for _, existing := range r.clientes {
		if existing.Email == c.Email {
			return apperror.AlreadyExists("El cliente ya esta registrado")
		}
	}
	c.ID = primitive.NewObjectID()
	c.Creado = time.Now()
	r.clientes = append(r.clientes, c)
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperror.NotFound("Cliente no encontrado")
}

func (r *stubClienteRepo) FindByEmail(_ context.Context, email string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, apperror.NotFound("Cliente no encontrado")
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := []model.Cliente{}
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) ListByVendedor(_ context.Context, vendedor primitive.ObjectID, eliminado bool) ([]model.Cliente, error) {
	out := []model.Cliente{}
	for _, c := range r.clientes {
		if c.Vendedor == vendedor && c.Eliminado == eliminado {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	existing, err := r.FindByID(ctx, c.ID)
	if err != nil {
		return err
	}
	*existing = *c
	return nil
}

func (r *stubClienteRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	c.Eliminado = true
	return nil
}

type stubPedidoRepo struct {
	pedidos []*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo { return &stubPedidoRepo{} }

func (r *stubPedidoRepo) Create(_ context.Context, p *model.Pedido) error {
	p.ID = primitive.NewObjectID()
	p.Creado = time.Now()
	r.pedidos = append(r.pedidos, p)
	return nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Pedido, error) {
	for _, p := range r.pedidos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NotFound("Pedido no encontrado")
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	out := []model.Pedido{}
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) ListByVendedor(_ context.Context, vendedor primitive.ObjectID) ([]model.Pedido, error) {
	out := []model.Pedido{}
	for _, p := range r.pedidos {
		if p.Vendedor == vendedor {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListByVendedorEstado(_ context.Context, vendedor primitive.ObjectID, estado string) ([]model.Pedido, error) {
	out := []model.Pedido{}
	for _, p := range r.pedidos {
		if p.Vendedor == vendedor && p.Estado == estado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ListByEstado(_ context.Context, estado string) ([]model.Pedido, error) {
	out := []model.Pedido{}
	for _, p := range r.pedidos {
		if p.Estado == estado {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	existing, err := r.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*existing = *p
	return nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, p := range r.pedidos {
		if p.ID == id {
			r.pedidos = append(r.pedidos[:i], r.pedidos[i+1:]...)
			return nil
		}
	}
	return apperror.NotFound("Pedido no encontrado")
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func seedProducto(r *stubProductoRepo, nombre string, stock int, precio float64) *model.Producto {
	p := &model.Producto{
		ID:     primitive.NewObjectID(),
		Nombre: nombre,
		Stock:  stock,
		Precio: precio,
		Creado: time.Now(),
	}
	r.productos = append(r.productos, p)
	return p
}

func seedCliente(r *stubClienteRepo, nombre, email string, vendedor primitive.ObjectID) *model.Cliente {
	c := &model.Cliente{
		ID:       primitive.NewObjectID(),
		Nombre:   nombre,
		Apellido: "Test",
		Empresa:  "Empresa Test",
		Email:    email,
		Vendedor: vendedor,
		Creado:   time.Now(),
	}
	r.clientes = append(r.clientes, c)
	return c
}

func seedPedido(r *stubPedidoRepo, cliente, vendedor primitive.ObjectID, total float64, estado string) *model.Pedido {
	p := &model.Pedido{
		ID:       primitive.NewObjectID(),
		Cliente:  cliente,
		Vendedor: vendedor,
		Total:    total,
		Estado:   estado,
		Creado:   time.Now(),
	}
	r.pedidos = append(r.pedidos, p)
	return p
}
