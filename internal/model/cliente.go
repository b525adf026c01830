package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cliente belongs to exactly one vendedor. Vendedor is stamped at creation
// from the authenticated caller and never reassigned.
type Cliente struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nombre    string             `bson:"nombre"`
	Apellido  string             `bson:"apellido"`
	Empresa   string             `bson:"empresa"`
	Email     string             `bson:"email"` // unique
	Telefono  string             `bson:"telefono,omitempty"`
	Vendedor  primitive.ObjectID `bson:"vendedor"`
	Creado    time.Time          `bson:"creado"`
	Eliminado bool               `bson:"eliminado"`
}
