package analytics

import (
	"math"
	"sort"
)

// GrowthTargets 各指标相对上赛季的增长目标（百分比）；赠票率是固定目标值
type GrowthTargets struct {
	ARPG         float64 `mapstructure:"arpg" json:"arpg"`
	YieldATP     float64 `mapstructure:"yield_atp" json:"yield_atp"`
	RevPAS       float64 `mapstructure:"rev_pas" json:"rev_pas"`
	Occupancy    float64 `mapstructure:"occupancy" json:"occupancy"`
	GiveawayRate float64 `mapstructure:"giveaway_rate" json:"giveaway_rate"`
}

// MetricTarget 单个指标的目标与偏差
type MetricTarget struct {
	Metric    Metric  `json:"metric"`
	Current   float64 `json:"current"`
	Baseline  float64 `json:"baseline"`
	Target    float64 `json:"target"`
	Variance  float64 `json:"variance_pct"` // (current - target) / target * 100
	HasTarget bool    `json:"has_target"`
	Inverse   bool    `json:"inverse"`
}

// TargetSet 当前赛季相对基准赛季的目标对比
type TargetSet struct {
	Season         string         `json:"season"`
	BaselineSeason string         `json:"baseline_season"`
	Baseline       KPISet         `json:"baseline"`
	Metrics        []MetricTarget `json:"metrics"`
}

// PreviousSeason 在升序去重的赛季列表中取 current 的前一个赛季
func PreviousSeason(seasons []string, current string) (string, bool) {
	sorted := append([]string(nil), seasons...)
	sort.Strings(sorted)
	for i, s := range sorted {
		if s == current {
			if i == 0 {
				return "", false
			}
			return sorted[i-1], true
		}
	}
	return "", false
}

// Targets 以上一赛季（相同筛选、相同视图）为基准，乘以增长系数得到目标。
// 仅在恰好选择了一个赛季且数据中至少有两个赛季时产出，否则返回 nil。
func Targets(all []TicketingEvent, sel FilterSelection, opts ViewOptions, cfg ViewConfig, growth GrowthTargets) *TargetSet {
	seasons := sel.Season.Values()
	if len(seasons) != 1 {
		return nil
	}
	current := seasons[0]
	baselineSeason, ok := PreviousSeason(Seasons(all), current)
	if !ok {
		return nil
	}

	currentKPI := Pipeline(all, sel, opts, cfg)
	baseline := Pipeline(all, sel.With(DimSeason, Only(baselineSeason)), opts, cfg)
	if currentKPI == nil || baseline == nil {
		return nil
	}

	grow := func(v, pct float64) float64 { return v * (1 + pct/100) }
	targets := []struct {
		metric Metric
		target float64
	}{
		{MetricARPG, grow(baseline.ARPG, growth.ARPG)},
		{MetricYieldATP, grow(baseline.YieldATP, growth.YieldATP)},
		{MetricRevPAS, grow(baseline.RevPAS, growth.RevPAS)},
		{MetricOccupancy, math.Min(grow(baseline.Occupancy, growth.Occupancy), 100)},
		{MetricGiveawayRate, growth.GiveawayRate},
		{MetricAvgAttendance, baseline.AvgAttendance},
	}

	out := &TargetSet{
		Season:         current,
		BaselineSeason: baselineSeason,
		Baseline:       *baseline,
		Metrics:        make([]MetricTarget, 0, len(targets)),
	}
	for _, t := range targets {
		mt := MetricTarget{
			Metric:   t.metric,
			Current:  t.metric.Value(currentKPI),
			Baseline: t.metric.Value(baseline),
			Target:   t.target,
			Inverse:  t.metric.Inverse(),
		}
		if t.target != 0 {
			mt.HasTarget = true
			mt.Variance = (mt.Current - t.target) / t.target * 100
		}
		out.Metrics = append(out.Metrics, mt)
	}
	return out
}
