package service

import (
	"strings"
	"sync/atomic"
	"time"

	"ArenaRevenue/internal/analytics"
	"ArenaRevenue/internal/config"
	"ArenaRevenue/internal/report"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Dataset 一次加载得到的只读快照
type Dataset struct {
	Version   string
	LoadedAt  time.Time
	Ticketing []analytics.TicketingEvent
	GameDay   []analytics.GameDayEvent
}

// Query 一次查询的筛选与视图参数
type Query struct {
	Selection        analytics.FilterSelection
	Mode             analytics.ViewMode
	ExcludeGuest     bool
	IncludeTicketing bool // 比赛日收入是否含票务
}

func (q Query) viewOptions() analytics.ViewOptions {
	return q.Mode.Options(q.Selection.Zone, q.ExcludeGuest)
}

// AnalyticsService 持有当前快照，所有计算都基于调用时看到的那份快照
type AnalyticsService struct {
	cfg      config.AnalyticsConfig
	view     analytics.ViewConfig
	logger   *logrus.Logger
	snapshot atomic.Pointer[Dataset]
	now      func() time.Time
}

// NewAnalyticsService 创建服务；首次加载前使用空快照
func NewAnalyticsService(cfg config.AnalyticsConfig, logger *logrus.Logger) *AnalyticsService {
	s := &AnalyticsService{
		cfg:    cfg,
		view:   cfg.ViewConfig(),
		logger: logger,
		now:    time.Now,
	}
	s.snapshot.Store(&Dataset{Version: "empty"})
	return s
}

// Swap 替换快照
func (s *AnalyticsService) Swap(ticketing []analytics.TicketingEvent, gameDay []analytics.GameDayEvent) *Dataset {
	d := &Dataset{
		Version:   uuid.NewString(),
		LoadedAt:  s.now(),
		Ticketing: ticketing,
		GameDay:   gameDay,
	}
	s.snapshot.Store(d)
	s.logger.WithFields(logrus.Fields{
		"version":   d.Version,
		"ticketing": len(ticketing),
		"gameday":   len(gameDay),
	}).Info("分析快照已更新")
	return d
}

// Snapshot 当前快照
func (s *AnalyticsService) Snapshot() *Dataset {
	return s.snapshot.Load()
}

// Version 当前快照版本，用于缓存键
func (s *AnalyticsService) Version() string {
	return s.Snapshot().Version
}

// Options 下拉选项
func (s *AnalyticsService) Options(dim analytics.Dimension, sel analytics.FilterSelection) []string {
	return analytics.AvailableOptions(s.Snapshot().Ticketing, sel, dim)
}

// KPIResult 指标卡片
type KPIResult struct {
	Version    string               `json:"version"`
	View       analytics.ViewMode   `json:"view"`
	KPIs       *analytics.KPISet    `json:"kpis"`       // nil 表示没有匹配的比赛
	Efficiency *analytics.KPISet    `json:"efficiency"` // 比赛日渠道 + 扣除锁定席位
	Targets    *analytics.TargetSet `json:"targets"`    // 只选一个赛季且有上赛季数据时才有
}

// KPIs 当前筛选的指标、效率视图指标与上赛季目标
func (s *AnalyticsService) KPIs(q Query) KPIResult {
	d := s.Snapshot()
	return KPIResult{
		Version:    d.Version,
		View:       q.Mode,
		KPIs:       analytics.Pipeline(d.Ticketing, q.Selection, q.viewOptions(), s.view),
		Efficiency: analytics.Pipeline(d.Ticketing, q.Selection, analytics.EfficiencyOptions(q.Selection.Zone, q.ExcludeGuest), s.view),
		Targets:    analytics.Targets(d.Ticketing, q.Selection, q.viewOptions(), s.view, s.cfg.Growth),
	}
}

// Distressed 当前视图的滞销座区；基准票价取所选赛季全部比赛
func (s *AnalyticsService) Distressed(q Query) analytics.DistressReport {
	d := s.Snapshot()
	view := analytics.Transform(analytics.Filter(d.Ticketing, q.Selection), q.viewOptions(), s.view)
	benchmark := analytics.BenchmarkYields(d.Ticketing, q.Selection.Season)
	return analytics.DetectDistressed(view, benchmark)
}

// ZoneResult 座区效率矩阵与赠票成本
type ZoneResult struct {
	Version string                   `json:"version"`
	View    analytics.ViewMode       `json:"view"`
	Zones   []analytics.ZoneRow      `json:"zones"`
	Comps   analytics.CompCostReport `json:"comps"`
}

// Zones 当前视图的座区明细与赠票收入损失
func (s *AnalyticsService) Zones(q Query) ZoneResult {
	d := s.Snapshot()
	view := analytics.Transform(analytics.Filter(d.Ticketing, q.Selection), q.viewOptions(), s.view)
	return ZoneResult{
		Version: d.Version,
		View:    q.Mode,
		Zones:   analytics.ZoneBreakdown(view),
		Comps:   analytics.CompCost(view),
	}
}

// SeasonRunRates 逐赛季收入对比，只按联赛筛选；最新赛季按配置的总场次外推
func (s *AnalyticsService) SeasonRunRates(leagues analytics.Selection) []analytics.SeasonRun {
	d := s.Snapshot()
	return analytics.SeasonRunRates(d.Ticketing, d.GameDay, leagues, s.cfg.TotalEvents)
}

// Compare A/B 场景对比
func (s *AnalyticsService) Compare(a, b analytics.Scenario, mode analytics.ViewMode) analytics.Comparison {
	return analytics.Compare(s.Snapshot().Ticketing, a, b, mode, s.view)
}

// PacingResult 票务、比赛日两条进度以及全部业务线；nil 表示无定义
type PacingResult struct {
	Ticketing *analytics.PacingResult `json:"ticketing"`
	GameDay   *analytics.PacingResult `json:"gameday"`
	Portfolio *analytics.Portfolio    `json:"portfolio"`
}

// Pacing 赛季进度与完赛预测
func (s *AnalyticsService) Pacing(q Query) PacingResult {
	d := s.Snapshot()
	var out PacingResult

	kpis := analytics.Pipeline(d.Ticketing, q.Selection, q.viewOptions(), s.view)
	ticketingRevenue, played := 0.0, 0
	if kpis != nil {
		ticketingRevenue, played = kpis.TotalRevenue, kpis.GameCount
	}
	if r, ok := analytics.Project(analytics.PacingInput{
		CurrentRevenue: ticketingRevenue,
		EventsPlayed:   played,
		TotalEvents:    s.cfg.TotalEvents,
		SeasonTarget:   s.cfg.TicketingTarget(q.Mode),
		Kind:           analytics.StreamVariable,
	}); ok {
		out.Ticketing = &r
	}

	gameDay := analytics.FilterGameDay(d.GameDay, d.Ticketing, q.Selection)
	var gameDayRevenue, gameDayNet float64
	for _, g := range gameDay {
		gameDayRevenue += g.TotalRevenue
		gameDayNet += g.NetOfTicketing()
	}
	current := gameDayNet
	if q.IncludeTicketing {
		current = gameDayRevenue
	}
	if r, ok := analytics.Project(analytics.PacingInput{
		CurrentRevenue: current,
		EventsPlayed:   len(gameDay),
		TotalEvents:    s.cfg.TotalEvents,
		SeasonTarget:   s.cfg.GameDayTarget(q.IncludeTicketing),
		Kind:           analytics.StreamVariable,
	}); ok {
		out.GameDay = &r
	}

	// 业务线进度：票务取总视图收入
	total := analytics.Pipeline(d.Ticketing, q.Selection, analytics.ViewTotal.Options(q.Selection.Zone, q.ExcludeGuest), s.view)
	totalRevenue := 0.0
	if total != nil {
		totalRevenue = total.TotalRevenue
	}
	verticals := s.verticals(totalRevenue, gameDayNet, played)
	if p, ok := analytics.ProjectPortfolio(verticals, played, s.cfg.TotalEvents); ok {
		out.Portfolio = &p
	}
	return out
}

func (s *AnalyticsService) verticals(ticketing, gameDayNet float64, played int) []analytics.Vertical {
	out := make([]analytics.Vertical, 0, len(s.cfg.Verticals))
	for _, vc := range s.cfg.Verticals {
		v := analytics.Vertical{
			ID:     vc.ID,
			Name:   vc.Name,
			Kind:   analytics.VerticalKind(strings.ToLower(vc.Kind)),
			Target: vc.Target,
		}
		switch vc.Source {
		case "ticketing":
			v.Current, v.HasData = ticketing, true
		case "gameday":
			v.Current, v.HasData = gameDayNet, true
		case "contract":
			// 未签约（合同额为 0）也计入合计，确认额与完赛值都为 0
			v.SignedValue = vc.SignedValue
			v.Current = analytics.ProrateContract(vc.SignedValue, played, s.cfg.TotalEvents)
			v.HasData = true
		}
		out = append(out, v)
	}
	return out
}

// GameDay 比赛日收入汇总；nil 表示没有匹配的比赛
func (s *AnalyticsService) GameDay(q Query) *analytics.GameDaySummary {
	d := s.Snapshot()
	return analytics.SummarizeGameDay(analytics.FilterGameDay(d.GameDay, d.Ticketing, q.Selection))
}

// BoardReport 汇总报表数据
func (s *AnalyticsService) BoardReport(q Query) report.BoardReport {
	kpis := s.KPIs(q)
	pacing := s.Pacing(q)
	return report.BoardReport{
		RunID:       uuid.NewString()[:8],
		GeneratedAt: s.now(),
		DataVersion: kpis.Version,
		Scope:       describeSelection(q.Selection),
		View:        q.Mode,
		KPIs:        kpis.KPIs,
		Efficiency:  kpis.Efficiency,
		Targets:     kpis.Targets,
		Distressed:  s.Distressed(q),
		Pacing:      pacing.Ticketing,
		Portfolio:   pacing.Portfolio,
		GameDay:     s.GameDay(q),
	}
}

// describeSelection 报表中的筛选描述，只列出有限制的维度
func describeSelection(sel analytics.FilterSelection) string {
	var parts []string
	for _, d := range analytics.Dimensions {
		s := sel.Get(d)
		if s.IsAll() {
			continue
		}
		parts = append(parts, string(d)+"="+strings.Join(s.Values(), ","))
	}
	if len(parts) == 0 {
		return "全部"
	}
	return strings.Join(parts, "; ")
}
