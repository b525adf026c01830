package service

import (
	"context"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/dto"
	"github.com/larturi/crm-graphql-go/internal/model"
	"github.com/larturi/crm-graphql-go/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductoService interface {
	Crear(ctx context.Context, input dto.ProductoInput) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, eliminado bool) ([]dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id string, input dto.ProductoInput) (*dto.ProductoResponse, error)
	// Eliminar soft-deletes: the document stays, flagged eliminado=true.
	Eliminar(ctx context.Context, id string) (*dto.ProductoResponse, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Crear(ctx context.Context, input dto.ProductoInput) (*dto.ProductoResponse, error) {
	producto := &model.Producto{
		Nombre: input.Nombre,
		Stock:  *input.Stock,
		Precio: *input.Precio,
	}
	if input.Eliminado != nil {
		producto.Eliminado = *input.Eliminado
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Listar(ctx context.Context, eliminado bool) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.List(ctx, eliminado)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	pid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Invalid("ID invalido")
	}
	producto, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Actualizar(ctx context.Context, id string, input dto.ProductoInput) (*dto.ProductoResponse, error) {
	pid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Invalid("ID invalido")
	}
	producto, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}

	producto.Nombre = input.Nombre
	producto.Stock = *input.Stock
	producto.Precio = *input.Precio
	if input.Eliminado != nil {
		producto.Eliminado = *input.Eliminado
	}

	if err := s.repo.Update(ctx, producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Eliminar(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	pid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperror.Invalid("ID invalido")
	}
	producto, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SoftDelete(ctx, pid); err != nil {
		return nil, err
	}
	producto.Eliminado = true
	return productoToResponse(producto), nil
}
