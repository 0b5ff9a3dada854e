package analytics

import (
	"math"
	"testing"
	"time"
)

func line(z Zone, ch Channel, qty int, rev float64) SalesLineItem {
	return SalesLineItem{Zone: z, Channel: ch, Quantity: qty, Revenue: rev}
}

// newEvent 按原始数据的约定计算上座、收入与容量
func newEvent(id, season, league, opponent string, tier int, date time.Time, caps map[Zone]int, lines ...SalesLineItem) TicketingEvent {
	e := TicketingEvent{
		ID:             id,
		Date:           date,
		Season:         season,
		League:         league,
		Opponent:       opponent,
		Tier:           tier,
		ZoneCapacities: caps,
		SalesBreakdown: lines,
	}
	for _, li := range lines {
		e.Attendance += li.Quantity
		e.TotalRevenue += li.Revenue
	}
	for _, c := range caps {
		e.Capacity += c
	}
	return e
}

// testEvents 两个赛季、三个对手、三种星期的小样本
func testEvents() []TicketingEvent {
	return []TicketingEvent{
		newEvent("e1", "24-25", "LBA", "Milano", 1,
			time.Date(2024, 10, 6, 18, 0, 0, 0, time.UTC), // 周日
			map[Zone]int{ZoneTribunaGold: 1500, ZoneCurva: 400, ZoneGuest: 100},
			line(ZoneTribunaGold, ChannelTicketOffice, 300, 9000),
			line(ZoneTribunaGold, ChannelSeasonPackage, 1000, 20000),
			line(ZoneCurva, ChannelMobile, 200, 2000),
			line(ZoneGuest, ChannelTicketOffice, 80, 800),
			line(ZoneTribunaGold, ChannelCorporate, 100, 3000),
			line(ZoneCurva, ChannelGiveaway, 50, 0),
		),
		newEvent("e2", "25-26", "LBA", "Milano", 1,
			time.Date(2025, 10, 12, 18, 0, 0, 0, time.UTC), // 周日
			map[Zone]int{ZoneTribunaGold: 1500, ZoneCurva: 400, ZoneGuest: 100},
			line(ZoneTribunaGold, ChannelTicketOffice, 400, 14000),
			line(ZoneTribunaGold, ChannelSeasonPackage, 1000, 22000),
			line(ZoneCurva, ChannelMobile, 150, 1800),
			line(ZoneGuest, ChannelTicketOffice, 60, 600),
			line(ZoneTribunaGold, ChannelCorporate, 120, 4800),
			line(ZoneCurva, ChannelProtocol, 20, 0),
		),
		newEvent("e3", "25-26", "LBA", "Trento", 2,
			time.Date(2025, 11, 1, 20, 30, 0, 0, time.UTC), // 周六
			map[Zone]int{ZoneTribunaGold: 1500, ZoneCurva: 400, ZoneGuest: 100},
			line(ZoneTribunaGold, ChannelTicketOffice, 200, 6000),
			line(ZoneTribunaGold, ChannelSeasonPackage, 1000, 22000),
			line(ZoneCurva, ChannelMobile, 100, 1000),
			line(ZoneCurva, ChannelGiveaway, 30, 0),
		),
		newEvent("e4", "25-26", "EuroCup", "Bursa", 3,
			time.Date(2025, 11, 19, 20, 0, 0, 0, time.UTC), // 周三
			map[Zone]int{ZoneTribunaGold: 1500, ZoneCurva: 400},
			line(ZoneTribunaGold, ChannelTicketOffice, 100, 2500),
			line(ZoneCurva, ChannelVendorBooth, 50, 400),
		),
	}
}

func ids(events []TicketingEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approx(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
