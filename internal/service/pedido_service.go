package service

import (
	"context"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/dto"
	"github.com/larturi/crm-graphql-go/internal/model"
	"github.com/larturi/crm-graphql-go/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PedidoService interface {
	Crear(ctx context.Context, callerID string, input dto.PedidoInput) (*dto.PedidoResponse, error)
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	ListarPorVendedor(ctx context.Context, callerID string) ([]dto.PedidoResponse, error)
	ListarPorEstado(ctx context.Context, callerID, estado string) ([]dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, callerID, id string) (*dto.PedidoResponse, error)
	Actualizar(ctx context.Context, callerID, id string, input dto.PedidoInput) (*dto.PedidoResponse, error)
	// Eliminar removes the document physically — pedidos carry no soft-delete
	// flag. Returns the removed pedido.
	Eliminar(ctx context.Context, callerID, id string) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	repo     repository.PedidoRepository
	clientes repository.ClienteRepository
	stock    StockService
}

func NewPedidoService(repo repository.PedidoRepository, clientes repository.ClienteRepository, stock StockService) PedidoService {
	return &pedidoService{repo: repo, clientes: clientes, stock: stock}
}

func (s *pedidoService) Crear(ctx context.Context, callerID string, input dto.PedidoInput) (*dto.PedidoResponse, error) {
	vendedor, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.InvalidToken()
	}
	cid, err := primitive.ObjectIDFromHex(input.Cliente)
	if err != nil {
		return nil, apperror.Invalid("ID de cliente invalido")
	}

	cliente, err := s.clientes.FindByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if err := VerificarPropietario(cliente.Vendedor.Hex(), callerID); err != nil {
		return nil, err
	}

	// Reserve stock line by line; a failing line aborts the pedido but keeps
	// the decrements already applied (see StockService.Reservar).
	if len(input.Pedido) > 0 {
		if err := s.stock.Reservar(ctx, input.Pedido); err != nil {
			return nil, err
		}
	}

	items, err := itemsToModel(input.Pedido)
	if err != nil {
		return nil, err
	}

	pedido := &model.Pedido{
		Pedido:   items,
		Cliente:  cid,
		Vendedor: vendedor,
		Estado:   model.EstadoPendiente,
	}
	if input.Total != nil {
		pedido.Total = *input.Total
	}
	if input.Estado != "" {
		pedido.Estado = input.Estado
	}

	if err := s.repo.Create(ctx, pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido, cliente), nil
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, pedidos)
}

func (s *pedidoService) ListarPorVendedor(ctx context.Context, callerID string) ([]dto.PedidoResponse, error) {
	vendedor, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.InvalidToken()
	}
	pedidos, err := s.repo.ListByVendedor(ctx, vendedor)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, pedidos)
}

func (s *pedidoService) ListarPorEstado(ctx context.Context, callerID, estado string) ([]dto.PedidoResponse, error) {
	vendedor, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperror.InvalidToken()
	}
	pedidos, err := s.repo.ListByVendedorEstado(ctx, vendedor, estado)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, pedidos)
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, callerID, id string) (*dto.PedidoResponse, error) {
	pedido, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido, s.lookupCliente(ctx, pedido.Cliente)), nil
}

func (s *pedidoService) Actualizar(ctx context.Context, callerID, id string, input dto.PedidoInput) (*dto.PedidoResponse, error) {
	pedido, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	cid, err := primitive.ObjectIDFromHex(input.Cliente)
	if err != nil {
		return nil, apperror.Invalid("ID de cliente invalido")
	}
	cliente, err := s.clientes.FindByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if err := VerificarPropietario(cliente.Vendedor.Hex(), callerID); err != nil {
		return nil, err
	}

	// Stock is only re-reserved when the payload replaces the line items.
	// The previous lines are NOT restored first — same best-effort policy as
	// creation.
	if input.Pedido != nil {
		if err := s.stock.Reservar(ctx, input.Pedido); err != nil {
			return nil, err
		}
		items, err := itemsToModel(input.Pedido)
		if err != nil {
			return nil, err
		}
		pedido.Pedido = items
	}

	pedido.Cliente = cid
	if input.Total != nil {
		pedido.Total = *input.Total
	}
	if input.Estado != "" {
		pedido.Estado = input.Estado
	}

	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido, cliente), nil
}

func (s *pedidoService) Eliminar(ctx context.Context, callerID, id string) (*dto.PedidoResponse, error) {
	pedido, err := s.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, pedido.ID); err != nil {
		return nil, err
	}
	return pedidoToResponse(pedido, s.lookupCliente(ctx, pedido.Cliente)), nil
}

// findOwned loads a pedido by id and gates it behind the ownership check.
func (s *pedidoService) findOwned(ctx context.Context, callerID, id string) (*model.Pedido, error) {
	pid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Invalid("ID invalido")
	}
	pedido, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if err := VerificarPropietario(pedido.Vendedor.Hex(), callerID); err != nil {
		return nil, err
	}
	return pedido, nil
}

// lookupCliente is a best-effort join for read paths: a dangling reference
// yields a nil cliente instead of failing the whole query.
func (s *pedidoService) lookupCliente(ctx context.Context, id primitive.ObjectID) *model.Cliente {
	cliente, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return cliente
}

func (s *pedidoService) join(ctx context.Context, pedidos []model.Pedido) ([]dto.PedidoResponse, error) {
	resp := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		resp = append(resp, *pedidoToResponse(&pedidos[i], s.lookupCliente(ctx, pedidos[i].Cliente)))
	}
	return resp, nil
}

func itemsToModel(items []dto.PedidoItemInput) ([]model.PedidoItem, error) {
	out := make([]model.PedidoItem, 0, len(items))
	for _, item := range items {
		pid, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			return nil, apperror.Invalid("ID de producto invalido")
		}
		out = append(out, model.PedidoItem{
			ID:       pid,
			Cantidad: item.Cantidad,
			Nombre:   item.Nombre,
			Precio:   item.Precio,
		})
	}
	return out, nil
}
