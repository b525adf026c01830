package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Usuario is a vendedor account. Email is unique (index created at startup).
// PasswordHash never leaves the API layer.
type Usuario struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nombre       string             `bson:"nombre"`
	Apellido     string             `bson:"apellido"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Creado       time.Time          `bson:"creado"`
}
