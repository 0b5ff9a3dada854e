package analytics

import "sort"

// DistressThreshold 上座率低于该值（%）的座区视为滞销
const DistressThreshold = 75.0

// ZoneStat 单次计算内某座区的累计值
type ZoneStat struct {
	Capacity int
	Sold     int
	Revenue  float64
}

// DistressedZone 滞销座区
type DistressedZone struct {
	Zone             Zone    `json:"zone"`
	Capacity         int     `json:"capacity"`
	Sold             int     `json:"sold"`
	FillRate         float64 `json:"fill_rate_pct"`
	Unsold           int     `json:"unsold"`
	YieldUsed        float64 `json:"yield_used"`
	PotentialRevenue float64 `json:"potential_revenue"`
}

// DistressReport 按潜在收入降序排列的滞销座区及其合计
type DistressReport struct {
	Zones                 []DistressedZone `json:"zones"`
	TotalPotentialRevenue float64          `json:"total_potential_revenue"`
}

// ZoneStats 按座区累计容量（取视图变换后的容量表）和销量/收入
func ZoneStats(events []TicketingEvent) map[Zone]*ZoneStat {
	stats := make(map[Zone]*ZoneStat)
	get := func(z Zone) *ZoneStat {
		s, ok := stats[z]
		if !ok {
			s = &ZoneStat{}
			stats[z] = s
		}
		return s
	}
	for _, e := range events {
		for z, capacity := range e.ZoneCapacities {
			get(z).Capacity += capacity
		}
		for _, li := range e.SalesBreakdown {
			s := get(li.Zone)
			s.Sold += li.Quantity
			s.Revenue += li.Revenue
		}
	}
	return stats
}

// BenchmarkYields 全赛季各座区平均票价 Σrevenue/Σquantity。
// 只按赛季筛选原始数据，不受对手、档次、星期等筛选影响；销量为 0 的座区不出现在结果里。
func BenchmarkYields(all []TicketingEvent, seasons Selection) map[Zone]float64 {
	qty := make(map[Zone]int)
	rev := make(map[Zone]float64)
	for _, e := range all {
		if !seasons.Contains(e.Season) {
			continue
		}
		for _, li := range e.SalesBreakdown {
			qty[li.Zone] += li.Quantity
			rev[li.Zone] += li.Revenue
		}
	}
	out := make(map[Zone]float64, len(qty))
	for z, q := range qty {
		if q > 0 {
			out[z] = rev[z] / float64(q)
		}
	}
	return out
}

// DetectDistressed 找出上座率低于阈值且容量大于 0 的座区。
// 单价优先取基准票价，其次取当前视图的实际票价，都没有时为 0。
func DetectDistressed(view []TicketingEvent, benchmark map[Zone]float64) DistressReport {
	report := DistressReport{Zones: []DistressedZone{}}
	for z, s := range ZoneStats(view) {
		if s.Capacity <= 0 {
			continue
		}
		fill := float64(s.Sold) / float64(s.Capacity) * 100
		if fill >= DistressThreshold {
			continue
		}
		unsold := s.Capacity - s.Sold
		if unsold < 0 {
			unsold = 0
		}
		yield, ok := benchmark[z]
		if !ok {
			if s.Sold > 0 {
				yield = s.Revenue / float64(s.Sold)
			}
		}
		dz := DistressedZone{
			Zone:             z,
			Capacity:         s.Capacity,
			Sold:             s.Sold,
			FillRate:         fill,
			Unsold:           unsold,
			YieldUsed:        yield,
			PotentialRevenue: float64(unsold) * yield,
		}
		report.Zones = append(report.Zones, dz)
	}

	sort.Slice(report.Zones, func(i, j int) bool {
		a, b := report.Zones[i], report.Zones[j]
		if a.PotentialRevenue != b.PotentialRevenue {
			return a.PotentialRevenue > b.PotentialRevenue
		}
		return a.Zone < b.Zone
	})
	for _, dz := range report.Zones {
		report.TotalPotentialRevenue += dz.PotentialRevenue
	}
	return report
}
