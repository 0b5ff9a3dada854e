package api

import (
	"net/http"

	"ArenaRevenue/internal/analytics"
	"ArenaRevenue/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SyncHandler struct {
	syncService *service.SyncService
	logger      *logrus.Logger
}

func NewSyncHandler(svc *service.SyncService, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		syncService: svc,
		logger:      logger,
	}
}

// ReloadHandler 从数据库重新加载分析快照
// @Summary 重新加载数据
// @Success 200 {object} service.ReloadResult
// @Failure 500 {object} map[string]string
// @Router /sync/reload [post]
func (h *SyncHandler) ReloadHandler(c *gin.Context) {
	result, err := h.syncService.Reload(c.Request.Context())
	if err != nil {
		h.logger.Errorf("重新加载失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ImportRequest 解析后的票务与比赛日数据
type ImportRequest struct {
	Ticketing []analytics.TicketingEvent `json:"ticketing"`
	GameDay   []analytics.GameDayEvent   `json:"gameday"`
}

// ImportHandler 写入一批数据后重新加载
// @Summary 导入数据
// @Param body body ImportRequest true "票务比赛与比赛日收入"
// @Success 200 {object} service.ReloadResult
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /sync/import [post]
func (h *SyncHandler) ImportHandler(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Ticketing) == 0 && len(req.GameDay) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ticketing or gameday is required"})
		return
	}

	result, err := h.syncService.Import(c.Request.Context(), req.Ticketing, req.GameDay)
	if err != nil {
		h.logger.Errorf("导入失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
