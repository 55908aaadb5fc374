package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luispabloln/control-biometrico/internal/source"
)

type ReloadHandler struct {
	Store  *source.Store
	Loader *source.Loader
}

func NewReloadHandler(store *source.Store, loader *source.Loader) *ReloadHandler {
	return &ReloadHandler{Store: store, Loader: loader}
}

// Reload re-fetches all three sources and swaps in a fresh snapshot. On
// failure the previous snapshot stays current.
func (h *ReloadHandler) Reload(c *gin.Context) {
	snap, err := h.Loader.Load(c.Request.Context())
	if err != nil {
		log.Printf("reload failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not reload sources"})
		return
	}
	h.Store.Set(snap)

	c.JSON(http.StatusOK, gin.H{
		"snapshotId": snap.ID,
		"loadedAt":   snap.LoadedAt,
		"employees":  len(snap.Employees),
		"events":     len(snap.Events),
		"holidays":   len(snap.Holidays),
	})
}
