package service

import (
	"context"
	"sort"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/dto"
	"github.com/larturi/crm-graphql-go/internal/model"
	"github.com/larturi/crm-graphql-go/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ranking sizes match the original reports.
const (
	topClientesLimit   = 10
	topVendedoresLimit = 3
	buscarLimit        = 10
)

// AnaliticaService computes ranked aggregates over completed pedidos.
// All operations are read-only.
type AnaliticaService interface {
	MejoresClientes(ctx context.Context) ([]dto.TopClienteResponse, error)
	MejoresVendedores(ctx context.Context) ([]dto.TopVendedorResponse, error)
	BuscarProductos(ctx context.Context, texto string) ([]dto.ProductoResponse, error)
}

type analiticaService struct {
	pedidos   repository.PedidoRepository
	clientes  repository.ClienteRepository
	usuarios  repository.UsuarioRepository
	productos repository.ProductoRepository
}

func NewAnaliticaService(
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
	usuarios repository.UsuarioRepository,
	productos repository.ProductoRepository,
) AnaliticaService {
	return &analiticaService{pedidos: pedidos, clientes: clientes, usuarios: usuarios, productos: productos}
}

// MejoresClientes groups COMPLETADO pedidos by cliente, sums their totals and
// returns the top groups sorted descending. Ties keep first-appearance order
// (stable sort over the grouping order).
func (s *analiticaService) MejoresClientes(ctx context.Context) ([]dto.TopClienteResponse, error) {
	grupos, err := s.agruparCompletados(ctx, func(p *model.Pedido) primitive.ObjectID { return p.Cliente })
	if err != nil {
		return nil, err
	}
	if len(grupos) > topClientesLimit {
		grupos = grupos[:topClientesLimit]
	}

	resp := make([]dto.TopClienteResponse, 0, len(grupos))
	for _, g := range grupos {
		entry := dto.TopClienteResponse{Total: g.total, Cliente: []dto.ClienteResponse{}}
		cliente, err := s.clientes.FindByID(ctx, g.id)
		switch {
		case err == nil:
			entry.Cliente = append(entry.Cliente, *clienteToResponse(cliente))
		case !apperror.IsKind(err, apperror.KindNotFound):
			return nil, err
		}
		resp = append(resp, entry)
	}
	return resp, nil
}

// MejoresVendedores is the same pipeline grouped by vendedor, joined to the
// usuario record.
func (s *analiticaService) MejoresVendedores(ctx context.Context) ([]dto.TopVendedorResponse, error) {
	grupos, err := s.agruparCompletados(ctx, func(p *model.Pedido) primitive.ObjectID { return p.Vendedor })
	if err != nil {
		return nil, err
	}
	if len(grupos) > topVendedoresLimit {
		grupos = grupos[:topVendedoresLimit]
	}

	resp := make([]dto.TopVendedorResponse, 0, len(grupos))
	for _, g := range grupos {
		entry := dto.TopVendedorResponse{Total: g.total, Vendedor: []dto.UsuarioResponse{}}
		usuario, err := s.usuarios.FindByID(ctx, g.id)
		switch {
		case err == nil:
			entry.Vendedor = append(entry.Vendedor, *usuarioToResponse(usuario))
		case !apperror.IsKind(err, apperror.KindNotFound):
			return nil, err
		}
		resp = append(resp, entry)
	}
	return resp, nil
}

// BuscarProductos delegates to the text index on productos.nombre.
func (s *analiticaService) BuscarProductos(ctx context.Context, texto string) ([]dto.ProductoResponse, error) {
	productos, err := s.productos.Search(ctx, texto, buscarLimit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

type grupo struct {
	id    primitive.ObjectID
	total float64
}

func (s *analiticaService) agruparCompletados(ctx context.Context, key func(*model.Pedido) primitive.ObjectID) ([]grupo, error) {
	pedidos, err := s.pedidos.ListByEstado(ctx, model.EstadoCompletado)
	if err != nil {
		return nil, err
	}

	totales := make(map[primitive.ObjectID]float64)
	orden := make([]primitive.ObjectID, 0)
	for i := range pedidos {
		k := key(&pedidos[i])
		if _, ok := totales[k]; !ok {
			orden = append(orden, k)
		}
		totales[k] += pedidos[i].Total
	}

	grupos := make([]grupo, 0, len(orden))
	for _, id := range orden {
		grupos = append(grupos, grupo{id: id, total: totales[id]})
	}
	sort.SliceStable(grupos, func(i, j int) bool { return grupos[i].total > grupos[j].total })
	return grupos, nil
}
