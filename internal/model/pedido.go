package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estado values for a pedido lifecycle.
const (
	EstadoPendiente  = "PENDIENTE"
	EstadoCompletado = "COMPLETADO"
	EstadoCancelado  = "CANCELADO"
)

// PedidoItem is one order line. Nombre and Precio are denormalized from the
// product at the time the line was written.
type PedidoItem struct {
	ID       primitive.ObjectID `bson:"id"`
	Cantidad int                `bson:"cantidad"`
	Nombre   string             `bson:"nombre,omitempty"`
	Precio   float64            `bson:"precio,omitempty"`
}

// Pedido is an order placed for a cliente. Vendedor always equals the
// cliente's vendedor at the time the pedido was created; every mutation
// re-checks that equality before touching the document.
type Pedido struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Pedido   []PedidoItem       `bson:"pedido"`
	Total    float64            `bson:"total"`
	Cliente  primitive.ObjectID `bson:"cliente"`
	Vendedor primitive.ObjectID `bson:"vendedor"`
	Estado   string             `bson:"estado"`
	Creado   time.Time          `bson:"creado"`
}
