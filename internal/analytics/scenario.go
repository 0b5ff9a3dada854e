package analytics

import "math"

// NeutralDelta 差值绝对值小于该值（百分点）时视为持平
const NeutralDelta = 0.1

// Scenario 对比中的一方，筛选状态与客队区开关各自独立
type Scenario struct {
	Selection        FilterSelection `json:"selection"`
	ExcludeGuestZone bool            `json:"exclude_guest"`
}

// MetricDelta 单个指标的 A/B 对比
type MetricDelta struct {
	Metric         Metric  `json:"metric"`
	A              float64 `json:"a"`
	B              float64 `json:"b"`
	DeltaPct       float64 `json:"delta_pct"`
	HigherIsBetter bool    `json:"higher_is_better"`
	Favourable     bool    `json:"favourable"`
	Neutral        bool    `json:"neutral"`
}

// Comparison A/B 对比结果；任一方无数据时 Insufficient 为 true 且没有 Deltas
type Comparison struct {
	A            *KPISet       `json:"a"`
	B            *KPISet       `json:"b"`
	Deltas       []MetricDelta `json:"deltas"`
	Insufficient bool          `json:"insufficient"`
}

// ComparedMetrics 对比展示的指标及顺序
var ComparedMetrics = []Metric{
	MetricTotalRevenue,
	MetricARPG,
	MetricAvgAttendance,
	MetricYieldATP,
	MetricRevPAS,
	MetricOccupancy,
	MetricGiveawayRate,
}

// Delta (b-a)/a*100；a 为 0 时 b>0 记 100，否则 0
func Delta(a, b float64) float64 {
	if a > 0 {
		return (b - a) / a * 100
	}
	if a == 0 && b > 0 {
		return 100
	}
	return 0
}

// Compare 两个场景各自独立跑一遍 筛选 → 视图变换 → 汇总
func Compare(all []TicketingEvent, a, b Scenario, mode ViewMode, cfg ViewConfig) Comparison {
	kpiA := Pipeline(all, a.Selection, mode.Options(a.Selection.Zone, a.ExcludeGuestZone), cfg)
	kpiB := Pipeline(all, b.Selection, mode.Options(b.Selection.Zone, b.ExcludeGuestZone), cfg)

	cmp := Comparison{A: kpiA, B: kpiB}
	if kpiA == nil || kpiB == nil {
		cmp.Insufficient = true
		return cmp
	}

	cmp.Deltas = make([]MetricDelta, 0, len(ComparedMetrics))
	for _, m := range ComparedMetrics {
		va, vb := m.Value(kpiA), m.Value(kpiB)
		d := Delta(va, vb)
		md := MetricDelta{
			Metric:         m,
			A:              va,
			B:              vb,
			DeltaPct:       d,
			HigherIsBetter: !m.Inverse(),
			Neutral:        math.Abs(d) < NeutralDelta,
		}
		if !md.Neutral {
			md.Favourable = (d > 0) == md.HigherIsBetter
		}
		cmp.Deltas = append(cmp.Deltas, md)
	}
	return cmp
}
