package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luispabloln/control-biometrico/internal/config"
	"github.com/luispabloln/control-biometrico/internal/handlers"
	"github.com/luispabloln/control-biometrico/internal/source"
)

func Register(router *gin.Engine, cfg config.Config, store *source.Store, loader *source.Loader) {
	router.Use(corsMiddleware(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "control-biometrico"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		snap, ok := store.Current()
		if !ok {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "data": "not loaded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"snapshotId": snap.ID,
			"loadedAt":   snap.LoadedAt,
		})
	})

	reportHandler := handlers.NewReportHandler(store, cfg)
	dashboardHandler := handlers.NewDashboardHandler(store, cfg)
	reloadHandler := handlers.NewReloadHandler(store, loader)

	api := router.Group("/api")
	{
		api.GET("/report", reportHandler.Get)
		api.GET("/report/months", reportHandler.Months)
		api.GET("/report/areas", reportHandler.Areas)
		api.GET("/dashboard", dashboardHandler.Get)
		api.POST("/reload", reloadHandler.Reload)
	}
}

func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := []string{}
	for _, origin := range strings.Split(allowed, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	allowAll := len(origins) == 0

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowedOrigin := range origins {
				if origin == allowedOrigin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					c.Writer.Header().Set("Vary", "Origin")
					break
				}
			}
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
