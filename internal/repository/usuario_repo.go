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
)

const usuarioCollection = "usuarios"

// UsuarioRepository defines the data access contract for vendedor accounts.
// Services depend on this interface, not on the concrete Mongo implementation,
// enabling clean unit testing via in-memory stubs.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
}

type usuarioRepo struct{ coll *mongo.Collection }

func NewUsuarioRepository(db *mongo.Database) UsuarioRepository {
	return &usuarioRepo{coll: db.Collection(usuarioCollection)}
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	u.Creado = time.Now()
	result, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.AlreadyExists("El usuario ya esta registrado")
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("Usuario no encontrado")
		}
		return nil, fmt.Errorf("find usuario: %w", err)
	}
	return &u, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("Usuario no encontrado")
		}
		return nil, fmt.Errorf("find usuario by email: %w", err)
	}
	return &u, nil
}
