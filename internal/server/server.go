package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tree_habitat/internal/config"
	"tree_habitat/internal/database"
	"tree_habitat/internal/handlers"
	"tree_habitat/internal/middlewares"
	"tree_habitat/internal/repositories"
	"tree_habitat/internal/routes"
	"tree_habitat/internal/services"
)

// NewServer loads configuration, prepares the database, and wires the
// repository/service/handler layers into an HTTP server.
func NewServer() *http.Server {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if cfg.Seed {
		if err := database.Seed(pool); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	// Dependency injection
	treeRepo := repositories.NewTreeRepository(pool)
	insectRepo := repositories.NewInsectRepository(pool)
	assocRepo := repositories.NewAssociationRepository(pool)

	treeService := services.NewTreeService(treeRepo)
	insectService := services.NewInsectService(insectRepo, assocRepo)
	associationService := services.NewAssociationService(treeRepo, insectRepo, assocRepo)

	treeHandler := handlers.NewTreeHandler(treeService)
	insectHandler := handlers.NewInsectHandler(insectService)
	associationHandler := handlers.NewAssociationHandler(associationService)

	router := gin.Default()
	router.Use(middlewares.RequestID)
	router.Use(cors.Default())

	routes.RegisterRoutes(router, treeHandler, insectHandler, associationHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
