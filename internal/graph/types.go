package graph

import (
	"github.com/graphql-go/graphql"
)

// Object types mirror the public schema; field resolution relies on the json
// tags of the dto structs.

var usuarioType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Usuario",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.ID},
		"nombre":   &graphql.Field{Type: graphql.String},
		"apellido": &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
		"creado":   &graphql.Field{Type: graphql.String},
	},
})

var productoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Producto",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.ID},
		"nombre":    &graphql.Field{Type: graphql.String},
		"stock":     &graphql.Field{Type: graphql.Int},
		"precio":    &graphql.Field{Type: graphql.Float},
		"creado":    &graphql.Field{Type: graphql.String},
		"eliminado": &graphql.Field{Type: graphql.Boolean},
	},
})

var clienteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Cliente",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.ID},
		"nombre":    &graphql.Field{Type: graphql.String},
		"apellido":  &graphql.Field{Type: graphql.String},
		"empresa":   &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"telefono":  &graphql.Field{Type: graphql.String},
		"vendedor":  &graphql.Field{Type: graphql.ID},
		"creado":    &graphql.Field{Type: graphql.String},
		"eliminado": &graphql.Field{Type: graphql.Boolean},
	},
})

var estadoPedidoEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "EstadoPedido",
	Values: graphql.EnumValueConfigMap{
		"PENDIENTE":  &graphql.EnumValueConfig{Value: "PENDIENTE"},
		"COMPLETADO": &graphql.EnumValueConfig{Value: "COMPLETADO"},
		"CANCELADO":  &graphql.EnumValueConfig{Value: "CANCELADO"},
	},
})

var pedidoGrupoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PedidoGrupo",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.ID},
		"cantidad": &graphql.Field{Type: graphql.Int},
		"nombre":   &graphql.Field{Type: graphql.String},
		"precio":   &graphql.Field{Type: graphql.Float},
	},
})

var pedidoType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Pedido",
	Fields: graphql.Fields{
		"id":       &graphql.Field{Type: graphql.ID},
		"pedido":   &graphql.Field{Type: graphql.NewList(pedidoGrupoType)},
		"total":    &graphql.Field{Type: graphql.Float},
		"cliente":  &graphql.Field{Type: clienteType},
		"vendedor": &graphql.Field{Type: graphql.ID},
		"fecha":    &graphql.Field{Type: graphql.String},
		"estado":   &graphql.Field{Type: estadoPedidoEnum},
	},
})

var topClienteType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopCliente",
	Fields: graphql.Fields{
		"total":   &graphql.Field{Type: graphql.Float},
		"cliente": &graphql.Field{Type: graphql.NewList(clienteType)},
	},
})

var topVendedorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopVendedor",
	Fields: graphql.Fields{
		"total":    &graphql.Field{Type: graphql.Float},
		"vendedor": &graphql.Field{Type: graphql.NewList(usuarioType)},
	},
})

var tokenType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Token",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.String},
	},
})

// Input types.

var usuarioInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UsuarioInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"apellido": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var autenticarInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AutenticarInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var productoInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"stock":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"precio":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"eliminado": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var clienteInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ClienteInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"nombre":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"apellido":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"empresa":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"telefono":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"eliminado": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var pedidoProductoInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PedidoProductoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"cantidad": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"nombre":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"precio":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var pedidoInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PedidoInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"pedido":  &graphql.InputObjectFieldConfig{Type: graphql.NewList(pedidoProductoInputType)},
		"total":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"cliente": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"estado":  &graphql.InputObjectFieldConfig{Type: estadoPedidoEnum},
	},
})
