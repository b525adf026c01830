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

const productoCollection = "productos"

// ProductoRepository defines the data access contract for catalog products.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Producto, error)
	List(ctx context.Context, eliminado bool) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error

	// UpdateStock persists an already-computed stock value. Callers read the
	// product, validate the decrement, and write back through here.
	UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) error

	// Search runs a $text match against the product name index.
	Search(ctx context.Context, texto string, limit int64) ([]model.Producto, error)
}

type productoRepo struct{ coll *mongo.Collection }

func NewProductoRepository(db *mongo.Database) ProductoRepository {
	return &productoRepo{coll: db.Collection(productoCollection)}
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	p.Creado = time.Now()
	result, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *productoRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Producto, error) {
	var p model.Producto
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("Producto no encontrado")
		}
		return nil, fmt.Errorf("find producto: %w", err)
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, eliminado bool) ([]model.Producto, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"eliminado": eliminado},
		options.Find().SetSort(bson.D{{Key: "creado", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer cursor.Close(ctx)

	productos := []model.Producto{}
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	return productos, nil
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	update := bson.M{"$set": bson.M{
		"nombre":    p.Nombre,
		"stock":     p.Stock,
		"precio":    p.Precio,
		"eliminado": p.Eliminado,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("Producto no encontrado")
	}
	return nil
}

func (r *productoRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"eliminado": true}})
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("Producto no encontrado")
	}
	return nil
}

func (r *productoRepo) UpdateStock(ctx context.Context, id primitive.ObjectID, stock int) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"stock": stock}})
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("Producto no encontrado")
	}
	return nil
}

func (r *productoRepo) Search(ctx context.Context, texto string, limit int64) ([]model.Producto, error) {
	filter := bson.M{"$text": bson.M{"$search": texto}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("search productos: %w", err)
	}
	defer cursor.Close(ctx)

	productos := []model.Producto{}
	if err := cursor.All(ctx, &productos); err != nil {
		return nil, fmt.Errorf("decode productos: %w", err)
	}
	return productos, nil
}
