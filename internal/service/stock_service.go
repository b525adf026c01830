package service

import (
	"context"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/dto"
	"github.com/larturi/crm-graphql-go/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockService validates and applies inventory decrements when a pedido is
// created or its line items are replaced.
type StockService interface {
	// Reservar processes the line items strictly in input order. Each line is
	// checked against current stock and, when sufficient, its decrement is
	// persisted immediately. The first failing line aborts the remaining
	// lines WITHOUT rolling back decrements already written — partial
	// application on failure is the documented contract, not an accident.
	Reservar(ctx context.Context, items []dto.PedidoItemInput) error
}

type stockService struct {
	productos repository.ProductoRepository
}

func NewStockService(productos repository.ProductoRepository) StockService {
	return &stockService{productos: productos}
}

func (s *stockService) Reservar(ctx context.Context, items []dto.PedidoItemInput) error {
	for _, item := range items {
		pid, err := primitive.ObjectIDFromHex(item.ID)
		if err != nil {
			return apperror.Invalid("ID de producto invalido")
		}

		producto, err := s.productos.FindByID(ctx, pid)
		if err != nil {
			return err
		}

		if item.Cantidad > producto.Stock {
			return apperror.InsufficientStock(producto.Nombre)
		}

		// Read-then-write, no compare-and-swap: concurrent reservations on the
		// same product can race (accepted limitation, see DESIGN.md).
		if err := s.productos.UpdateStock(ctx, pid, producto.Stock-item.Cantidad); err != nil {
			return err
		}
	}
	return nil
}
