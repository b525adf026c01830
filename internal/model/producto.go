package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Producto is a catalog item. Stock is only mutated by order placement and
// order updates. Products are soft-deleted: Eliminado=true hides them from
// the default listings but the document is never removed.
type Producto struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Nombre    string             `bson:"nombre"` // text index
	Stock     int                `bson:"stock"`
	Precio    float64            `bson:"precio"`
	Creado    time.Time          `bson:"creado"`
	Eliminado bool               `bson:"eliminado"`
}
