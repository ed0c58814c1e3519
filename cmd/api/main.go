package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-system/internal/auth"
	"github.com/BruksfildServices01/appointment-system/internal/config"
	dbpkg "github.com/BruksfildServices01/appointment-system/internal/db"
	"github.com/BruksfildServices01/appointment-system/internal/middleware"
	"github.com/BruksfildServices01/appointment-system/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := auth.SeedDefaultAdmin(db, cfg.BcryptCost); err != nil {
		log.Fatalf("failed to seed default admin: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
