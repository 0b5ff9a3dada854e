package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ArenaRevenue/internal/analytics"
	"ArenaRevenue/internal/interfaces"

	"github.com/sirupsen/logrus"
)

// SyncService 负责从存储加载数据并替换分析快照
type SyncService struct {
	store     interfaces.EventStore
	analytics *AnalyticsService
	logger    *logrus.Logger
	mu        sync.Mutex // 串行化加载，避免旧数据覆盖新快照
}

func NewSyncService(store interfaces.EventStore, analytics *AnalyticsService, logger *logrus.Logger) *SyncService {
	return &SyncService{
		store:     store,
		analytics: analytics,
		logger:    logger,
	}
}

// ReloadResult 一次加载的结果
type ReloadResult struct {
	Version   string    `json:"version"`
	LoadedAt  time.Time `json:"loaded_at"`
	Ticketing int       `json:"ticketing_events"`
	GameDay   int       `json:"gameday_events"`
}

// Reload 重新读取全部数据；任一数据源失败时保留旧快照
func (s *SyncService) Reload(ctx context.Context) (*ReloadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(ctx)
}

func (s *SyncService) reloadLocked(ctx context.Context) (*ReloadResult, error) {
	start := time.Now()
	ticketing, err := s.store.ListTicketingEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载票务数据失败: %w", err)
	}
	gameDay, err := s.store.ListGameDayEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载比赛日数据失败: %w", err)
	}

	d := s.analytics.Swap(ticketing, gameDay)
	s.logger.WithFields(logrus.Fields{
		"version": d.Version,
		"cost":    time.Since(start).String(),
	}).Info("数据加载完成")
	return &ReloadResult{
		Version:   d.Version,
		LoadedAt:  d.LoadedAt,
		Ticketing: len(ticketing),
		GameDay:   len(gameDay),
	}, nil
}

// Import 票务与比赛日数据一次性写入后重新加载；写入失败时存储与快照都不变
func (s *SyncService) Import(ctx context.Context, ticketing []analytics.TicketingEvent, gameDay []analytics.GameDayEvent) (*ReloadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ticketing) > 0 || len(gameDay) > 0 {
		if err := s.store.SaveBatch(ctx, ticketing, gameDay); err != nil {
			return nil, fmt.Errorf("导入数据失败: %w", err)
		}
	}
	s.logger.Infof("导入完成: 票务%d场, 比赛日%d场", len(ticketing), len(gameDay))
	return s.reloadLocked(ctx)
}
