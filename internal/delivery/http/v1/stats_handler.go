package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JRossell27/Job-tracker/internal/delivery/http/response"
	"github.com/JRossell27/Job-tracker/internal/domain"
)

type StatsHandler struct {
	statsUC domain.StatsUsecase
}

// NewStatsHandler registers the read-side stats and chart routes
func NewStatsHandler(r *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &StatsHandler{statsUC: statsUC}

	r.GET("/stats", handler.Summary)
	r.GET("/stats/timeline", handler.Timeline)
	r.GET("/stats/status-counts", handler.StatusCounts)
}

// Summary godoc
// @Summary      Tracker stats
// @Description  Totals and interview/offer rates over the current row set
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Stats}
// @Router       /stats [get]
// @Security     BearerAuth
func (h *StatsHandler) Summary(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))

	stats, err := h.statsUC.Summary(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Stats retrieved", stats)
}

// Timeline godoc
// @Summary      Applications over time
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.DateCount}
// @Router       /stats/timeline [get]
// @Security     BearerAuth
func (h *StatsHandler) Timeline(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))

	counts, err := h.statsUC.Timeline(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Timeline retrieved", counts)
}

// StatusCounts godoc
// @Summary      Applications by status
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.StatusCount}
// @Router       /stats/status-counts [get]
// @Security     BearerAuth
func (h *StatsHandler) StatusCounts(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))

	counts, err := h.statsUC.StatusCounts(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status counts retrieved", counts)
}
