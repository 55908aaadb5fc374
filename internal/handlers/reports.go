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

type ReportHandler struct {
	Store  *source.Store
	Cutoff models.ClockTime
	Now    func() time.Time
}

type reportQuery struct {
	Month    string `form:"month"`
	Area     string `form:"area"`
	Query    string `form:"q"`
	LateOnly bool   `form:"lateOnly"`
}

func NewReportHandler(store *source.Store, cfg config.Config) *ReportHandler {
	return &ReportHandler{Store: store, Cutoff: cfg.Cutoff, Now: time.Now}
}

func (h *ReportHandler) snapshot(c *gin.Context) (*source.Snapshot, bool) {
	snap, ok := h.Store.Current()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data not loaded"})
		return nil, false
	}
	return snap, true
}

func (h *ReportHandler) Get(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	var q reportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if q.Month == "" {
		q.Month = snap.DefaultMonth()
	}
	if q.Area == "" {
		q.Area = reconcile.AreaAll
	}

	report := reconcile.BuildReport(
		snap.Employees,
		snap.Events,
		snap.Holidays,
		reconcile.Filters{Month: q.Month, Area: q.Area, Query: q.Query, LateOnly: q.LateOnly},
		h.Cutoff,
		h.Now(),
	)
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Months(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	months := snap.Months
	if months == nil {
		months = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"months": months, "default": snap.DefaultMonth()})
}

func (h *ReportHandler) Areas(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	areas := append([]string{reconcile.AreaAll}, snap.Areas...)
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}
