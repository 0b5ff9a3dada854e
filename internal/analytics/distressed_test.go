package analytics

import (
	"testing"
	"time"
)

func distressView() []TicketingEvent {
	return []TicketingEvent{
		newEvent("d1", "25-26", "LBA", "Milano", 1, time.Date(2025, 10, 12, 18, 0, 0, 0, time.UTC),
			map[Zone]int{"A": 100, "B": 200, "C": 0, "D": 50, "E": 100},
			line("A", ChannelTicketOffice, 90, 900),
			line("B", ChannelTicketOffice, 50, 1000),
			line("C", ChannelTicketOffice, 5, 50),
			line("D", ChannelMobile, 10, 100),
		),
	}
}

func TestDetectDistressed(t *testing.T) {
	report := DetectDistressed(distressView(), map[Zone]float64{"B": 30})

	var got []string
	for _, z := range report.Zones {
		got = append(got, string(z.Zone))
	}
	// A 90% 不计入；C 容量为 0 不计入
	if !equalStrings(got, []string{"B", "D", "E"}) {
		t.Fatalf("zones = %v", got)
	}

	b := report.Zones[0]
	if b.Unsold != 150 || b.Capacity != 200 || b.Sold != 50 {
		t.Errorf("B = %+v", b)
	}
	assertFloat(t, "B fill", b.FillRate, 25)
	assertFloat(t, "B yield from benchmark", b.YieldUsed, 30)
	assertFloat(t, "B potential", b.PotentialRevenue, 4500)

	d := report.Zones[1]
	assertFloat(t, "D yield from realized", d.YieldUsed, 10)
	assertFloat(t, "D potential", d.PotentialRevenue, 400)

	e := report.Zones[2]
	assertFloat(t, "E yield without data", e.YieldUsed, 0)
	assertFloat(t, "E potential", e.PotentialRevenue, 0)

	assertFloat(t, "headline", report.TotalPotentialRevenue, 4900)
}

func TestDetectDistressedProperties(t *testing.T) {
	cfg := DefaultViewConfig()
	all := testEvents()
	bench := BenchmarkYields(all, Only("25-26"))
	for _, mode := range []ViewMode{ViewTotal, ViewGameDayOnly} {
		view := Transform(Filter(all, FilterSelection{Season: Only("25-26")}), mode.Options(All(), false), cfg)
		stats := ZoneStats(view)
		report := DetectDistressed(view, bench)
		for i, z := range report.Zones {
			if stats[z.Zone].Capacity <= 0 {
				t.Errorf("%s: zone %s flagged with zero capacity", mode, z.Zone)
			}
			if z.FillRate >= DistressThreshold {
				t.Errorf("%s: zone %s above threshold", mode, z.Zone)
			}
			if i > 0 && report.Zones[i-1].PotentialRevenue < z.PotentialRevenue {
				t.Errorf("%s: not sorted by potential revenue", mode)
			}
		}
	}
}

func TestDetectDistressedTieBreak(t *testing.T) {
	view := []TicketingEvent{
		newEvent("t", "25-26", "LBA", "Milano", 1, time.Now(), map[Zone]int{"Z": 10, "M": 10, "A": 10}),
	}
	report := DetectDistressed(view, nil)
	var got []string
	for _, z := range report.Zones {
		got = append(got, string(z.Zone))
	}
	if !equalStrings(got, []string{"A", "M", "Z"}) {
		t.Fatalf("ties should sort by zone name, got %v", got)
	}
}

func TestDetectDistressedEmpty(t *testing.T) {
	report := DetectDistressed(nil, nil)
	if len(report.Zones) != 0 || report.TotalPotentialRevenue != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestBenchmarkYields(t *testing.T) {
	all := testEvents()
	all = append(all, newEvent("e5", "25-26", "LBA", "Venezia", 1, time.Now(),
		map[Zone]int{ZoneCourtside: 40},
		line(ZoneCourtside, ChannelGiveaway, 0, 0)))

	got := BenchmarkYields(all, Only("25-26"))
	// Tribuna Gold: (14000+22000+4800+6000+22000+2500) / (400+1000+120+200+1000+100)
	assertFloat(t, "Tribuna Gold", got[ZoneTribunaGold], 71300.0/2820)
	// Curva: (1800+0+1000+0+400) / (150+20+100+30+50)
	assertFloat(t, "Curva", got[ZoneCurva], 3200.0/350)
	if _, ok := got[ZoneCourtside]; ok {
		t.Error("zones with no quantity get no benchmark")
	}

	// 只按赛季筛选，不受其它维度影响
	prev := BenchmarkYields(all, Only("24-25"))
	assertFloat(t, "Ospiti 24-25", prev[ZoneGuest], 10)
}
