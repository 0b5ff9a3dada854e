package api

import (
	"fmt"
	"net/http"

	"ArenaRevenue/internal/analytics"
	"ArenaRevenue/internal/report"
	"ArenaRevenue/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AnalyticsHandler 提供给前端看板的分析接口
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *logrus.Logger
}

// NewAnalyticsHandler 创建 AnalyticsHandler
func NewAnalyticsHandler(svc *service.AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: svc,
		logger:           logger,
	}
}

func (h *AnalyticsHandler) query(c *gin.Context) (service.Query, bool) {
	q, err := parseQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return q, false
	}
	return q, true
}

// Options 某个筛选维度的可选值，随其余维度的选择收窄
// GET /api/options/:dimension?season=25-26
func (h *AnalyticsHandler) Options(c *gin.Context) {
	dim, err := analytics.ParseDimension(c.Param("dimension"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dimension": dim,
		"options":   h.analyticsService.Options(dim, parseSelection(c)),
	})
}

// KPIs 指标卡片 + 上赛季目标
// GET /api/kpis?season=25-26&view=gameday&exclude_guest=true
func (h *AnalyticsHandler) KPIs(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.analyticsService.KPIs(q))
}

// Distressed 滞销座区排名
// GET /api/distressed?season=25-26
func (h *AnalyticsHandler) Distressed(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.analyticsService.Distressed(q))
}

// Zones 座区效率矩阵与赠票成本
// GET /api/zones?season=25-26&view=gameday
func (h *AnalyticsHandler) Zones(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.analyticsService.Zones(q))
}

// Seasons 逐赛季收入对比（最新赛季为外推值）
// GET /api/seasons?league=LBA
func (h *AnalyticsHandler) Seasons(c *gin.Context) {
	sel := parseSelection(c)
	c.JSON(http.StatusOK, gin.H{
		"seasons": h.analyticsService.SeasonRunRates(sel.League),
	})
}

// CompareRequest A/B 对比请求；selection 中缺省的维度为不限，空数组为什么都不选
type CompareRequest struct {
	View string             `json:"view"`
	A    analytics.Scenario `json:"a"`
	B    analytics.Scenario `json:"b"`
}

// Compare 两组筛选的指标对比
// POST /api/compare
func (h *AnalyticsHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, err := analytics.ParseViewMode(req.View)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.analyticsService.Compare(req.A, req.B, mode))
}

// Pacing 赛季进度与完赛预测；无定义的部分返回 null
// GET /api/pacing?season=25-26&include_ticketing=true
func (h *AnalyticsHandler) Pacing(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.analyticsService.Pacing(q))
}

// GameDay 比赛日收入汇总
// GET /api/gameday?season=25-26
func (h *AnalyticsHandler) GameDay(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	summary := h.analyticsService.GameDay(q)
	c.JSON(http.StatusOK, gin.H{
		"version": h.analyticsService.Version(),
		"summary": summary,
	})
}

// Report 导出董事会报表
// GET /api/report.xlsx?season=25-26
func (h *AnalyticsHandler) Report(c *gin.Context) {
	q, ok := h.query(c)
	if !ok {
		return
	}
	r := h.analyticsService.BoardReport(q)
	f, err := report.Build(r)
	if err != nil {
		h.logger.WithError(err).Error("Build report failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", report.Filename(r)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		// 响应头已发出，只能记录
		h.logger.WithError(err).Error("Write report failed")
		return
	}
	h.logger.WithFields(logrus.Fields{
		"run_id":  r.RunID,
		"version": r.DataVersion,
		"scope":   r.Scope,
	}).Info("报表已导出")
}
