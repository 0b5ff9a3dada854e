package analytics

import (
	"math"
	"sort"
)

// ZoneRow 座区效率矩阵的一行，均值按视图内的场次计算
type ZoneRow struct {
	Zone         Zone    `json:"zone"`
	AvgCapacity  int     `json:"avg_capacity"`
	AvgSold      float64 `json:"avg_sold"`
	AvgPrice     float64 `json:"avg_price"`
	AvgRevenue   float64 `json:"avg_revenue"`
	TotalRevenue float64 `json:"total_revenue"`
	RevPAS       float64 `json:"revpas"`
	RevenueShare float64 `json:"revenue_share_pct"`
	FillRate     float64 `json:"fill_rate_pct"`
}

// ZoneBreakdown 各座区场均容量、销量、票价、收入与上座率，按收入降序。
// 容量为 0 的座区不出现；收入占比的分母包含全部座区的收入。
func ZoneBreakdown(view []TicketingEvent) []ZoneRow {
	rows := []ZoneRow{}
	if len(view) == 0 {
		return rows
	}
	games := float64(len(view))
	stats := ZoneStats(view)
	var totalRevenue float64
	for _, s := range stats {
		totalRevenue += s.Revenue
	}

	for z, s := range stats {
		if s.Capacity <= 0 {
			continue
		}
		row := ZoneRow{
			Zone:         z,
			AvgCapacity:  int(math.Round(float64(s.Capacity) / games)),
			AvgSold:      float64(s.Sold) / games,
			AvgRevenue:   s.Revenue / games,
			TotalRevenue: s.Revenue,
			RevPAS:       s.Revenue / float64(s.Capacity),
			FillRate:     float64(s.Sold) / float64(s.Capacity) * 100,
		}
		if s.Sold > 0 {
			row.AvgPrice = s.Revenue / float64(s.Sold)
		}
		if totalRevenue > 0 {
			row.RevenueShare = s.Revenue / totalRevenue * 100
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalRevenue != rows[j].TotalRevenue {
			return rows[i].TotalRevenue > rows[j].TotalRevenue
		}
		return rows[i].Zone < rows[j].Zone
	})
	return rows
}

// ZoneCompCost 某座区赠票的机会成本
type ZoneCompCost struct {
	Zone         Zone    `json:"zone"`
	CompQuantity int     `json:"comp_quantity"`
	LostRevenue  float64 `json:"lost_revenue"`
}

// CompCostReport 赠票（动态赠票 + 礼宾票）按付费票价折算的收入损失
type CompCostReport struct {
	Zones            []ZoneCompCost `json:"zones"`
	TotalLostRevenue float64        `json:"total_lost_revenue"`
	CompQuantity     int            `json:"comp_quantity"`
	PaidQuantity     int            `json:"paid_quantity"`
	CompRate         float64        `json:"comp_rate_pct"` // 赠票占总票量
}

// CompCost 逐场逐座区用付费渠道的平均票价乘以赠票张数；
// 该场该区没有付费销量时票价按 0 计。结果按损失降序。
func CompCost(view []TicketingEvent) CompCostReport {
	report := CompCostReport{Zones: []ZoneCompCost{}}
	type zoneGame struct {
		paidRevenue float64
		paidQty     int
		compQty     int
	}
	byZone := make(map[Zone]*ZoneCompCost)

	for _, e := range view {
		game := make(map[Zone]*zoneGame)
		for _, li := range e.SalesBreakdown {
			g, ok := game[li.Zone]
			if !ok {
				g = &zoneGame{}
				game[li.Zone] = g
			}
			if li.Channel.IsComplimentary() {
				g.compQty += li.Quantity
				report.CompQuantity += li.Quantity
				continue
			}
			g.paidRevenue += li.Revenue
			g.paidQty += li.Quantity
			report.PaidQuantity += li.Quantity
		}
		for z, g := range game {
			if g.compQty <= 0 {
				continue
			}
			zc, ok := byZone[z]
			if !ok {
				zc = &ZoneCompCost{Zone: z}
				byZone[z] = zc
			}
			zc.CompQuantity += g.compQty
			if g.paidQty > 0 {
				zc.LostRevenue += float64(g.compQty) * g.paidRevenue / float64(g.paidQty)
			}
		}
	}

	for _, zc := range byZone {
		report.Zones = append(report.Zones, *zc)
		report.TotalLostRevenue += zc.LostRevenue
	}
	sort.Slice(report.Zones, func(i, j int) bool {
		a, b := report.Zones[i], report.Zones[j]
		if a.LostRevenue != b.LostRevenue {
			return a.LostRevenue > b.LostRevenue
		}
		return a.Zone < b.Zone
	})
	if total := report.CompQuantity + report.PaidQuantity; total > 0 {
		report.CompRate = float64(report.CompQuantity) / float64(total) * 100
	}
	return report
}
