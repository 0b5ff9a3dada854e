package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register 注册全部路由；cache 只挂在 /api 的 JSON 查询上，报表每次生成新的编号不缓存
func Register(r gin.IRouter, analytics *AnalyticsHandler, sync *SyncHandler, cache gin.HandlerFunc) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/sync/reload", sync.ReloadHandler)
	r.POST("/sync/import", sync.ImportHandler)

	r.GET("/api/report.xlsx", analytics.Report)

	g := r.Group("/api")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("/options/:dimension", analytics.Options)
	g.GET("/kpis", analytics.KPIs)
	g.GET("/distressed", analytics.Distressed)
	g.GET("/zones", analytics.Zones)
	g.GET("/seasons", analytics.Seasons)
	g.POST("/compare", analytics.Compare)
	g.GET("/pacing", analytics.Pacing)
	g.GET("/gameday", analytics.GameDay)
}
