package analytics

import "sort"

// SeasonRun 单个赛季的票务与比赛日收入；最新赛季按场均跑率外推到整季
type SeasonRun struct {
	Season           string  `json:"season"`
	Ticketing        float64 `json:"ticketing"`
	TicketingActual  float64 `json:"ticketing_actual"`
	TicketingEvents  int     `json:"ticketing_events"`
	AvgAttendance    float64 `json:"avg_attendance"`
	CorporateRevenue float64 `json:"corporate_revenue"`
	GameDay          float64 `json:"gameday"`        // 不含票务
	GameDayActual    float64 `json:"gameday_actual"` // 不含票务
	GameDayEvents    int     `json:"gameday_events"`
	IsProjected      bool    `json:"is_projected"`
}

// SeasonRunRates 逐赛季对比，按赛季升序。leagues 只作用于联赛维度；
// 总场次不大于 0 时不做外推。
func SeasonRunRates(ticketing []TicketingEvent, gameDay []GameDayEvent, leagues Selection, totalEvents int) []SeasonRun {
	bySeason := make(map[string]*SeasonRun)
	get := func(season string) *SeasonRun {
		r, ok := bySeason[season]
		if !ok {
			r = &SeasonRun{Season: season}
			bySeason[season] = r
		}
		return r
	}

	attendance := make(map[string]int)
	for _, e := range ticketing {
		if !leagues.Contains(e.League) {
			continue
		}
		r := get(e.Season)
		r.TicketingActual += e.TotalRevenue
		r.TicketingEvents++
		attendance[e.Season] += e.Attendance
		for _, li := range e.SalesBreakdown {
			if li.Channel == ChannelCorporate {
				r.CorporateRevenue += li.Revenue
			}
		}
	}
	for _, g := range gameDay {
		if !leagues.Contains(g.League) {
			continue
		}
		r := get(g.Season)
		r.GameDayActual += g.NetOfTicketing()
		r.GameDayEvents++
	}

	out := make([]SeasonRun, 0, len(bySeason))
	for _, r := range bySeason {
		if r.TicketingEvents > 0 {
			r.AvgAttendance = float64(attendance[r.Season]) / float64(r.TicketingEvents)
		}
		r.Ticketing = r.TicketingActual
		r.GameDay = r.GameDayActual
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	if len(out) == 0 || totalEvents <= 0 {
		return out
	}

	cur := &out[len(out)-1]
	if cur.TicketingEvents > 0 {
		cur.Ticketing = cur.TicketingActual / float64(cur.TicketingEvents) * float64(totalEvents)
	}
	if cur.GameDayEvents > 0 {
		cur.GameDay = cur.GameDayActual / float64(cur.GameDayEvents) * float64(totalEvents)
	}
	cur.IsProjected = cur.TicketingEvents < totalEvents
	return out
}
