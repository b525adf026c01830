package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/larturi/crm-graphql-go/internal/apperror"
	"github.com/larturi/crm-graphql-go/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pedidoCollection = "pedidos"

// PedidoRepository defines the data access contract for pedidos.
type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pedido, error)
	List(ctx context.Context) ([]model.Pedido, error)
	ListByVendedor(ctx context.Context, vendedor primitive.ObjectID) ([]model.Pedido, error)
	ListByVendedorEstado(ctx context.Context, vendedor primitive.ObjectID, estado string) ([]model.Pedido, error)
	ListByEstado(ctx context.Context, estado string) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type pedidoRepo struct{ coll *mongo.Collection }

func NewPedidoRepository(db *mongo.Database) PedidoRepository {
	return &pedidoRepo{coll: db.Collection(pedidoCollection)}
}

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	p.Creado = time.Now()
	result, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *pedidoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("Pedido no encontrado")
		}
		return nil, fmt.Errorf("find pedido: %w", err)
	}
	return &p, nil
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	return r.find(ctx, bson.M{})
}

func (r *pedidoRepo) ListByVendedor(ctx context.Context, vendedor primitive.ObjectID) ([]model.Pedido, error) {
	return r.find(ctx, bson.M{"vendedor": vendedor})
}

func (r *pedidoRepo) ListByVendedorEstado(ctx context.Context, vendedor primitive.ObjectID, estado string) ([]model.Pedido, error) {
	return r.find(ctx, bson.M{"vendedor": vendedor, "estado": estado})
}

func (r *pedidoRepo) ListByEstado(ctx context.Context, estado string) ([]model.Pedido, error) {
	return r.find(ctx, bson.M{"estado": estado})
}

func (r *pedidoRepo) find(ctx context.Context, filter bson.M) ([]model.Pedido, error) {
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "creado", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer cursor.Close(ctx)

	pedidos := []model.Pedido{}
	if err := cursor.All(ctx, &pedidos); err != nil {
		return nil, fmt.Errorf("decode pedidos: %w", err)
	}
	return pedidos, nil
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	update := bson.M{"$set": bson.M{
		"pedido":  p.Pedido,
		"total":   p.Total,
		"cliente": p.Cliente,
		"estado":  p.Estado,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("Pedido no encontrado")
	}
	return nil
}

func (r *pedidoRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperror.NotFound("Pedido no encontrado")
	}
	return nil
}
