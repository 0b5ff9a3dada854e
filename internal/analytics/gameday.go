package analytics

// GameDaySummary 比赛日收入汇总
type GameDaySummary struct {
	GameCount          int     `json:"game_count"`
	TotalAttendance    int     `json:"total_attendance"`
	TotalRevenue       float64 `json:"total_revenue"`
	TixRevenue         float64 `json:"tix_revenue"`
	MerchRevenue       float64 `json:"merch_revenue"`
	FBRevenue          float64 `json:"fb_revenue"`
	HospitalityRevenue float64 `json:"hospitality_revenue"`
	ParkingRevenue     float64 `json:"parking_revenue"`
	SponsorshipRevenue float64 `json:"sponsorship_revenue"`
	TVRevenue          float64 `json:"tv_revenue"`
	ExpRevenue         float64 `json:"exp_revenue"`
	NetOfTicketing     float64 `json:"net_of_ticketing"`
	AvgRevenue         float64 `json:"avg_revenue"`
	AvgNetRevenue      float64 `json:"avg_net_revenue"`
	PerCapita          float64 `json:"per_capita"` // 扣除票务后的人均消费
}

// FilterGameDay 比赛日数据直接按赛季、联赛、对手、星期、日期筛选。
// 比赛日数据没有档次，档次通过同赛季同对手的票务比赛确定；找不到对应比赛时视为通过。
func FilterGameDay(events []GameDayEvent, ticketing []TicketingEvent, sel FilterSelection) []GameDayEvent {
	type key struct{ season, opponent string }
	var tiers map[key]int
	if !sel.Tier.IsAll() {
		tiers = make(map[key]int)
		for _, t := range ticketing {
			k := key{t.Season, t.Opponent}
			if _, ok := tiers[k]; !ok {
				tiers[k] = t.Tier
			}
		}
	}

	out := make([]GameDayEvent, 0, len(events))
	for _, g := range events {
		if !sel.Season.Contains(g.Season) ||
			!sel.League.Contains(g.League) ||
			!sel.Opponent.Contains(g.Opponent) ||
			!sel.Day.Contains(DayName(g.Date)) ||
			!sel.Date.Contains(DateLabel(g.Date)) {
			continue
		}
		if tiers != nil {
			if tier, ok := tiers[key{g.Season, g.Opponent}]; ok && !sel.Tier.Contains(TierLabel(tier)) {
				continue
			}
		}
		out = append(out, g)
	}
	return out
}

// SummarizeGameDay 没有比赛时返回 nil
func SummarizeGameDay(events []GameDayEvent) *GameDaySummary {
	if len(events) == 0 {
		return nil
	}
	s := &GameDaySummary{GameCount: len(events)}
	for _, g := range events {
		s.TotalAttendance += g.Attendance
		s.TotalRevenue += g.TotalRevenue
		s.TixRevenue += g.TixRevenue
		s.MerchRevenue += g.MerchRevenue
		s.FBRevenue += g.FBRevenue
		s.HospitalityRevenue += g.HospitalityRevenue
		s.ParkingRevenue += g.ParkingRevenue
		s.SponsorshipRevenue += g.SponsorshipRevenue
		s.TVRevenue += g.TVRevenue
		s.ExpRevenue += g.ExpRevenue
		s.NetOfTicketing += g.NetOfTicketing()
	}
	n := float64(s.GameCount)
	s.AvgRevenue = s.TotalRevenue / n
	s.AvgNetRevenue = s.NetOfTicketing / n
	if s.TotalAttendance > 0 {
		s.PerCapita = s.NetOfTicketing / float64(s.TotalAttendance)
	}
	return s
}
