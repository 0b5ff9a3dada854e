package analytics

// KPISet 一组比赛的汇总指标
type KPISet struct {
	GameCount       int     `json:"game_count"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalAttendance int     `json:"total_attendance"`
	TotalCapacity   int     `json:"total_capacity"`
	TotalSold       int     `json:"total_sold"`
	ARPG            float64 `json:"arpg"`              // 场均收入
	AvgAttendance   float64 `json:"avg_attendance"`    // 场均上座
	YieldATP        float64 `json:"yield_atp"`         // 平均票价
	RevPAS          float64 `json:"rev_pas"`           // 每可售座位收入
	Occupancy       float64 `json:"occupancy_pct"`     // 上座率 %
	CorpShare       float64 `json:"corp_share_pct"`    // 企业收入占比 %
	GiveawayRate    float64 `json:"giveaway_rate_pct"` // 赠票率 %
	TopZone         string  `json:"top_zone"`          // 售出张数最多的座区
}

// Aggregate 汇总指标；没有比赛时返回 nil，调用方据此区分"无数据"和"收入为零"
func Aggregate(events []TicketingEvent) *KPISet {
	if len(events) == 0 {
		return nil
	}

	k := &KPISet{GameCount: len(events)}
	var corpRevenue float64
	var complimentary int
	soldByZone := make(map[Zone]int)

	for _, e := range events {
		k.TotalRevenue += e.TotalRevenue
		k.TotalAttendance += e.Attendance
		k.TotalCapacity += e.Capacity
		for _, li := range e.SalesBreakdown {
			k.TotalSold += li.Quantity
			soldByZone[li.Zone] += li.Quantity
			if li.Channel == ChannelCorporate {
				corpRevenue += li.Revenue
			}
			if li.Channel.IsComplimentary() {
				complimentary += li.Quantity
			}
		}
	}

	k.ARPG = k.TotalRevenue / float64(k.GameCount)
	k.AvgAttendance = float64(k.TotalAttendance) / float64(k.GameCount)
	if k.TotalSold > 0 {
		k.YieldATP = k.TotalRevenue / float64(k.TotalSold)
	}
	if k.TotalCapacity > 0 {
		k.RevPAS = k.TotalRevenue / float64(k.TotalCapacity)
		k.Occupancy = float64(k.TotalAttendance) / float64(k.TotalCapacity) * 100
	}
	if k.TotalRevenue > 0 {
		k.CorpShare = corpRevenue / k.TotalRevenue * 100
	}
	if k.TotalAttendance > 0 {
		k.GiveawayRate = float64(complimentary) / float64(k.TotalAttendance) * 100
	}
	k.TopZone = topZone(soldByZone)
	return k
}

func topZone(sold map[Zone]int) string {
	var best Zone
	bestQty := 0
	for z, q := range sold {
		if q > bestQty || (q == bestQty && q > 0 && z < best) {
			best, bestQty = z, q
		}
	}
	return string(best)
}

// Pipeline 筛选 → 视图变换 → 汇总
func Pipeline(events []TicketingEvent, sel FilterSelection, opts ViewOptions, cfg ViewConfig) *KPISet {
	return Aggregate(Transform(Filter(events, sel), opts, cfg))
}
