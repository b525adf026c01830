package router

import (
	"context"
	"net/http"
	"time"

	"github.com/larturi/crm-graphql-go/internal/config"
	"github.com/larturi/crm-graphql-go/internal/graph"
	"github.com/larturi/crm-graphql-go/internal/middleware"
	"github.com/larturi/crm-graphql-go/internal/repository"
	"github.com/larturi/crm-graphql-go/internal/service"

	"github.com/gin-gonic/gin"
	gqlhandler "github.com/graphql-go/handler"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Resolver ← Service ← Repository ← Mongo
func New(cfg *config.Config, db *mongo.Database) (*gin.Engine, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	stockSvc := service.NewStockService(productoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, stockSvc)
	analiticaSvc := service.NewAnaliticaService(pedidoRepo, clienteRepo, usuarioRepo, productoRepo)

	// ── GraphQL ──────────────────────────────────────────────────────────────
	resolver := graph.NewResolver(authSvc, productoSvc, clienteSvc, pedidoSvc, analiticaSvc)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	h := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   cfg.Env != "production",
		GraphiQL: cfg.Env != "production",
	})

	r.GET("/health", health(db))

	// Token verification happens here; an invalid token still reaches the
	// schema, just without an identity in context.
	gql := r.Group("/graphql", middleware.JWTContext(cfg.JWTSecret))
	gql.POST("", gin.WrapH(h))
	gql.GET("", gin.WrapH(h))

	return r, nil
}

func health(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Client().Ping(ctx, readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
