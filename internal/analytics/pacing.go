package analytics

import "sort"

// StreamKind 收入流类型
type StreamKind string

const (
	StreamVariable   StreamKind = "variable"   // 按场次跑率外推
	StreamContracted StreamKind = "contracted" // 合同/固定收入，完赛值为合同额
)

// PacingInput 单个收入流的进度输入
type PacingInput struct {
	CurrentRevenue float64
	EventsPlayed   int
	TotalEvents    int
	SeasonTarget   float64
	Kind           StreamKind
	ContractValue  float64 // 仅 contracted 使用；为 0 时取 SeasonTarget
}

// PacingResult 赛季进度与完赛预测
type PacingResult struct {
	SeasonProgress  float64 `json:"season_progress_pct"`
	RevenueProgress float64 `json:"revenue_progress_pct"`
	PacingDelta     float64 `json:"pacing_delta"`
	IsAhead         bool    `json:"is_ahead"`
	RunRate         float64 `json:"run_rate"`
	ProjectedFinish float64 `json:"projected_finish"`
	ProjectionDiff  float64 `json:"projection_diff"` // 正数为超额，负数为缺口
}

// Project 目标或总场次不大于 0 时无定义，返回 false
func Project(in PacingInput) (PacingResult, bool) {
	if in.SeasonTarget <= 0 || in.TotalEvents <= 0 {
		return PacingResult{}, false
	}
	played := in.EventsPlayed
	if played < 1 {
		played = 1
	}

	r := PacingResult{
		SeasonProgress:  float64(in.EventsPlayed) / float64(in.TotalEvents) * 100,
		RevenueProgress: in.CurrentRevenue / in.SeasonTarget * 100,
		RunRate:         in.CurrentRevenue / float64(played),
	}
	r.PacingDelta = r.RevenueProgress - r.SeasonProgress
	r.IsAhead = r.PacingDelta >= 0

	switch in.Kind {
	case StreamContracted:
		r.ProjectedFinish = in.ContractValue
		if r.ProjectedFinish == 0 {
			r.ProjectedFinish = in.SeasonTarget
		}
	default:
		r.ProjectedFinish = r.RunRate * float64(in.TotalEvents)
	}
	r.ProjectionDiff = r.ProjectedFinish - in.SeasonTarget
	return r, true
}

// VerticalKind 业务线的进度计算方式
type VerticalKind string

const (
	VerticalVariable VerticalKind = "variable" // 随场次产生
	VerticalProrated VerticalKind = "prorated" // 全年合同按时间确认
	VerticalAbsolute VerticalKind = "absolute" // 已实现即为完赛值
)

// Vertical 一条业务线及其当前数据。HasData 为 false 的业务线不计入合计。
type Vertical struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Kind        VerticalKind `json:"kind"`
	Target      float64      `json:"target"`
	Current     float64      `json:"current"`
	SignedValue float64      `json:"signed_value,omitempty"` // prorated 的全年合同额
	HasData     bool         `json:"has_data"`
}

// VerticalPacing 单条业务线的进度
type VerticalPacing struct {
	Vertical
	Expected        float64 `json:"expected_to_date"`
	PacePct         float64 `json:"pace_pct"`
	ProjectedFinish float64 `json:"projected_finish"`
}

// Portfolio 各业务线汇总进度
type Portfolio struct {
	EventsPlayed    int              `json:"events_played"`
	TotalEvents     int              `json:"total_events"`
	SeasonProgress  float64          `json:"season_progress_pct"`
	Verticals       []VerticalPacing `json:"verticals"`
	TotalYTD        float64          `json:"total_ytd"`
	TotalTarget     float64          `json:"total_target"`
	TotalProjected  float64          `json:"total_projected"`
	RevenueProgress float64          `json:"revenue_progress_pct"`
	PacingDelta     float64          `json:"pacing_delta"`
	IsAhead         bool             `json:"is_ahead"`
	ProjectionDiff  float64          `json:"projection_diff"`
	BestVertical    string           `json:"best_vertical,omitempty"`
	WorstVertical   string           `json:"worst_vertical,omitempty"`
}

// ProrateContract 合同类业务线：当前确认额 = 合同额 × 赛季进度
func ProrateContract(signed float64, eventsPlayed, totalEvents int) float64 {
	if totalEvents <= 0 {
		return 0
	}
	return signed * float64(eventsPlayed) / float64(totalEvents)
}

// ProjectPortfolio 计算每条业务线的进度，并只用有数据的业务线汇总。
// 总场次不大于 0 时返回 false。
func ProjectPortfolio(verticals []Vertical, eventsPlayed, totalEvents int) (Portfolio, bool) {
	if totalEvents <= 0 {
		return Portfolio{}, false
	}
	fraction := float64(eventsPlayed) / float64(totalEvents)
	played := eventsPlayed
	if played < 1 {
		played = 1
	}

	p := Portfolio{
		EventsPlayed:   eventsPlayed,
		TotalEvents:    totalEvents,
		SeasonProgress: fraction * 100,
		Verticals:      make([]VerticalPacing, 0, len(verticals)),
	}
	var withData []VerticalPacing
	for _, v := range verticals {
		vp := VerticalPacing{Vertical: v}
		if v.Kind == VerticalVariable {
			vp.Expected = v.Target / float64(totalEvents) * float64(eventsPlayed)
		} else {
			vp.Expected = v.Target * fraction
		}
		if vp.Expected > 0 {
			vp.PacePct = (v.Current/vp.Expected - 1) * 100
		}
		switch v.Kind {
		case VerticalVariable:
			vp.ProjectedFinish = v.Current / float64(played) * float64(totalEvents)
		case VerticalProrated:
			vp.ProjectedFinish = v.SignedValue
		default:
			vp.ProjectedFinish = v.Current
		}
		p.Verticals = append(p.Verticals, vp)
		if v.HasData {
			withData = append(withData, vp)
		}
	}

	for _, vp := range withData {
		p.TotalYTD += vp.Current
		p.TotalTarget += vp.Target
		p.TotalProjected += vp.ProjectedFinish
	}
	if p.TotalTarget > 0 {
		p.RevenueProgress = p.TotalYTD / p.TotalTarget * 100
	}
	p.PacingDelta = p.RevenueProgress - p.SeasonProgress
	p.IsAhead = p.PacingDelta >= 0
	p.ProjectionDiff = p.TotalProjected - p.TotalTarget

	if len(withData) > 0 {
		sort.SliceStable(withData, func(i, j int) bool { return withData[i].PacePct > withData[j].PacePct })
		p.BestVertical = withData[0].ID
		p.WorstVertical = withData[len(withData)-1].ID
	}
	return p, true
}
