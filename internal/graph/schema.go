package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema. Every field dispatches to a single
// resolver method; errors returned by the services always reach the response
// errors array — no resolver swallows a failure into a silent null.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
	eliminadoArg := graphql.FieldConfigArgument{
		"eliminado": &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false},
	}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			// Usuarios
			"obtenerUsuario": &graphql.Field{Type: usuarioType, Resolve: r.obtenerUsuario},

			// Productos
			"obtenerProductos": &graphql.Field{
				Type:    graphql.NewList(productoType),
				Args:    eliminadoArg,
				Resolve: r.obtenerProductos,
			},
			"obtenerProducto": &graphql.Field{
				Type:    productoType,
				Args:    idArg,
				Resolve: r.obtenerProducto,
			},

			// Clientes
			"obtenerClientes": &graphql.Field{
				Type:    graphql.NewList(clienteType),
				Resolve: r.obtenerClientes,
			},
			"obtenerClientesVendedor": &graphql.Field{
				Type:    graphql.NewList(clienteType),
				Args:    eliminadoArg,
				Resolve: r.obtenerClientesVendedor,
			},
			"obtenerCliente": &graphql.Field{
				Type:    clienteType,
				Args:    idArg,
				Resolve: r.obtenerCliente,
			},

			// Pedidos
			"obtenerPedidos": &graphql.Field{
				Type:    graphql.NewList(pedidoType),
				Resolve: r.obtenerPedidos,
			},
			"obtenerPedidosVendedor": &graphql.Field{
				Type:    graphql.NewList(pedidoType),
				Resolve: r.obtenerPedidosVendedor,
			},
			"obtenerPedido": &graphql.Field{
				Type:    pedidoType,
				Args:    idArg,
				Resolve: r.obtenerPedido,
			},
			"obtenerPedidosEstado": &graphql.Field{
				Type: graphql.NewList(pedidoType),
				Args: graphql.FieldConfigArgument{
					"estado": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.obtenerPedidosEstado,
			},

			// Busquedas avanzadas
			"mejoresClientes": &graphql.Field{
				Type:    graphql.NewList(topClienteType),
				Resolve: r.mejoresClientes,
			},
			"mejoresVendedores": &graphql.Field{
				Type:    graphql.NewList(topVendedorType),
				Resolve: r.mejoresVendedores,
			},
			"buscarProducto": &graphql.Field{
				Type: graphql.NewList(productoType),
				Args: graphql.FieldConfigArgument{
					"texto": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.buscarProducto,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			// Usuarios
			"nuevoUsuario": &graphql.Field{
				Type: usuarioType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(usuarioInputType)},
				},
				Resolve: r.nuevoUsuario,
			},
			"autenticarUsuario": &graphql.Field{
				Type: tokenType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(autenticarInputType)},
				},
				Resolve: r.autenticarUsuario,
			},

			// Productos
			"nuevoProducto": &graphql.Field{
				Type: productoType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productoInputType)},
				},
				Resolve: r.nuevoProducto,
			},
			"actualizarProducto": &graphql.Field{
				Type: productoType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productoInputType)},
				},
				Resolve: r.actualizarProducto,
			},
			"eliminarProducto": &graphql.Field{
				Type:    productoType,
				Args:    idArg,
				Resolve: r.eliminarProducto,
			},

			// Clientes
			"nuevoCliente": &graphql.Field{
				Type: clienteType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clienteInputType)},
				},
				Resolve: r.nuevoCliente,
			},
			"actualizarCliente": &graphql.Field{
				Type: clienteType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clienteInputType)},
				},
				Resolve: r.actualizarCliente,
			},
			"eliminarCliente": &graphql.Field{
				Type:    graphql.String,
				Args:    idArg,
				Resolve: r.eliminarCliente,
			},

			// Pedidos
			"nuevoPedido": &graphql.Field{
				Type: pedidoType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(pedidoInputType)},
				},
				Resolve: r.nuevoPedido,
			},
			"actualizarPedido": &graphql.Field{
				Type: pedidoType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(pedidoInputType)},
				},
				Resolve: r.actualizarPedido,
			},
			"eliminarPedido": &graphql.Field{
				Type:    pedidoType,
				Args:    idArg,
				Resolve: r.eliminarPedido,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
