package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luispabloln/control-biometrico/internal/config"
	"github.com/luispabloln/control-biometrico/internal/models"
	"github.com/luispabloln/control-biometrico/internal/reconcile"
	"github.com/luispabloln/control-biometrico/internal/source"
)

type DashboardHandler struct {
	Store  *source.Store
	Cutoff models.ClockTime
	Now    func() time.Time
}

func NewDashboardHandler(store *source.Store, cfg config.Config) *DashboardHandler {
	return &DashboardHandler{Store: store, Cutoff: cfg.Cutoff, Now: time.Now}
}

// Get returns the headline figures for the most recent month across all
// areas: total lates, total late minutes, total absences.
func (h *DashboardHandler) Get(c *gin.Context) {
	snap, ok := h.Store.Current()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data not loaded"})
		return
	}

	report := reconcile.BuildReport(
		snap.Employees,
		snap.Events,
		snap.Holidays,
		reconcile.Filters{Month: snap.DefaultMonth(), Area: reconcile.AreaAll},
		h.Cutoff,
		h.Now(),
	)

	c.JSON(http.StatusOK, gin.H{
		"month":            report.Filters.Month,
		"employees":        len(snap.Employees),
		"lateCount":        report.Totals.LateCount,
		"lateMinutesTotal": report.Totals.LateMinutesTotal,
		"absenceCount":     report.Totals.AbsenceCount,
	})
}
