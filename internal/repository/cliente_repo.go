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

const clienteCollection = "clientes"

// ClienteRepository defines the data access contract for clientes.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Cliente, error)
	FindByEmail(ctx context.Context, email string) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	ListByVendedor(ctx context.Context, vendedor primitive.ObjectID, eliminado bool) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

type clienteRepo struct{ coll *mongo.Collection }

func NewClienteRepository(db *mongo.Database) ClienteRepository {
	return &clienteRepo{coll: db.Collection(clienteCollection)}
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	c.Creado = time.Now()
	result, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.AlreadyExists("El cliente ya esta registrado")
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid
	}
	return nil
}

func (r *clienteRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("Cliente no encontrado")
		}
		return nil, fmt.Errorf("find cliente: %w", err)
	}
	return &c, nil
}

func (r *clienteRepo) FindByEmail(ctx context.Context, email string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("Cliente no encontrado")
		}
		return nil, fmt.Errorf("find cliente by email: %w", err)
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	return r.find(ctx, bson.M{})
}

func (r *clienteRepo) ListByVendedor(ctx context.Context, vendedor primitive.ObjectID, eliminado bool) ([]model.Cliente, error) {
	return r.find(ctx, bson.M{"vendedor": vendedor, "eliminado": eliminado})
}

func (r *clienteRepo) find(ctx context.Context, filter bson.M) ([]model.Cliente, error) {
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "creado", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer cursor.Close(ctx)

	clientes := []model.Cliente{}
	if err := cursor.All(ctx, &clientes); err != nil {
		return nil, fmt.Errorf("decode clientes: %w", err)
	}
	return clientes, nil
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	update := bson.M{"$set": bson.M{
		"nombre":    c.Nombre,
		"apellido":  c.Apellido,
		"empresa":   c.Empresa,
		"email":     c.Email,
		"telefono":  c.Telefono,
		"eliminado": c.Eliminado,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": c.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.AlreadyExists("El email ya esta registrado")
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("Cliente no encontrado")
	}
	return nil
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"eliminado": true}})
	if err != nil {
		return fmt.Errorf("soft delete cliente: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperror.NotFound("Cliente no encontrado")
	}
	return nil
}
