package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/luispabloln/control-biometrico/internal/config"
	"github.com/luispabloln/control-biometrico/internal/middleware"
	"github.com/luispabloln/control-biometrico/internal/routes"
	"github.com/luispabloln/control-biometrico/internal/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	loader := source.NewLoader(cfg)
	store := source.NewStore()

	snap, err := loader.Load(context.Background())
	if err != nil {
		// The service still starts; a later reload can recover.
		log.Printf("initial load failed: %v", err)
	} else {
		store.Set(snap)
		log.Printf("loaded snapshot %s: %d employees, %d events, %d holidays",
			snap.ID, len(snap.Employees), len(snap.Events), len(snap.Holidays))
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	routes.Register(router, cfg, store, loader)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
