package analytics

import (
	"testing"
	"time"
)

func TestFixedCapacityDeduction(t *testing.T) {
	tests := []struct {
		name      string
		raw       int
		deduction int
		want      int
	}{
		{"部分扣除", 500, 300, 200},
		{"全部扣除", 500, 500, 0},
		{"扣除超过容量时下限为 0", 500, 800, 0},
		{"没有锁定席位", 500, 0, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEvent("x", "25-26", "LBA", "Milano", 1, time.Now(),
				map[Zone]int{ZoneCurva: tt.raw},
				line(ZoneCurva, ChannelTicketOffice, 100, 1000))
			cfg := DefaultViewConfig()
			cfg.FixedCapacity = map[Zone]int{ZoneCurva: tt.deduction}

			got := TransformEvent(e, ViewGameDayOnly.Options(All(), false), cfg)
			if got.ZoneCapacities[ZoneCurva] != tt.want || got.Capacity != tt.want {
				t.Errorf("capacity = %d (zone %d), want %d", got.Capacity, got.ZoneCapacities[ZoneCurva], tt.want)
			}
		})
	}
}

func TestTotalViewKeepsEverything(t *testing.T) {
	cfg := DefaultViewConfig()
	for _, e := range testEvents() {
		got := TransformEvent(e, ViewTotal.Options(All(), false), cfg)
		if got.Attendance != e.Attendance || !approx(got.TotalRevenue, e.TotalRevenue) || got.Capacity != e.Capacity {
			t.Errorf("%s: total view changed aggregates: %+v", e.ID, got)
		}
	}
}

func TestGameDayViewRestrictsChannels(t *testing.T) {
	e := testEvents()[0]
	got := TransformEvent(e, ViewGameDayOnly.Options(All(), false), DefaultViewConfig())
	for _, li := range got.SalesBreakdown {
		if li.Channel == ChannelSeasonPackage || li.Channel == ChannelCorporate || li.Channel == ChannelProtocol {
			t.Errorf("channel %s should be removed in game-day view", li.Channel)
		}
	}
	// 300 + 200 + 80 + 50
	if got.Attendance != 630 {
		t.Errorf("attendance = %d, want 630", got.Attendance)
	}
	assertFloat(t, "revenue", got.TotalRevenue, 11800)
	// Tribuna Gold 1500-1230, Curva 400-314, Ospiti 100-0
	if got.Capacity != 270+86+100 {
		t.Errorf("capacity = %d, want %d", got.Capacity, 270+86+100)
	}
}

// 渠道限制与锁定席位扣除可以单独开启
func TestViewStagesAreIndependent(t *testing.T) {
	e := testEvents()[0]
	cfg := DefaultViewConfig()

	channelsOnly := TransformEvent(e, ViewOptions{Zones: All(), RestrictChannels: true}, cfg)
	if channelsOnly.Capacity != e.Capacity {
		t.Errorf("channel restriction alone changed capacity: %d", channelsOnly.Capacity)
	}
	if channelsOnly.Attendance != 630 {
		t.Errorf("attendance = %d, want 630", channelsOnly.Attendance)
	}

	deductOnly := TransformEvent(e, ViewOptions{Zones: All(), DeductFixedCapacity: true}, cfg)
	if deductOnly.Attendance != e.Attendance {
		t.Errorf("deduction alone changed attendance: %d", deductOnly.Attendance)
	}
	if deductOnly.Capacity != 456 {
		t.Errorf("capacity = %d, want 456", deductOnly.Capacity)
	}

	eff := EfficiencyOptions(All(), false)
	if !eff.RestrictChannels || !eff.DeductFixedCapacity {
		t.Errorf("efficiency view must apply both stages: %+v", eff)
	}
}

func TestGuestZoneExclusion(t *testing.T) {
	cfg := DefaultViewConfig()
	selections := []Selection{All(), Only(string(ZoneGuest)), Only(string(ZoneGuest), string(ZoneCurva))}
	for _, zones := range selections {
		for _, mode := range []ViewMode{ViewTotal, ViewGameDayOnly} {
			for _, e := range Transform(testEvents(), mode.Options(zones, true), cfg) {
				if _, ok := e.ZoneCapacities[ZoneGuest]; ok {
					t.Errorf("%s/%s: guest capacity kept", e.ID, mode)
				}
				for _, li := range e.SalesBreakdown {
					if li.Zone == ZoneGuest {
						t.Errorf("%s/%s: guest line kept", e.ID, mode)
					}
				}
			}
		}
	}
}

func TestZoneSelectionNarrowsView(t *testing.T) {
	got := TransformEvent(testEvents()[1], ViewTotal.Options(Only(string(ZoneCurva)), false), DefaultViewConfig())
	if len(got.ZoneCapacities) != 1 || got.Capacity != 400 {
		t.Errorf("capacities = %v", got.ZoneCapacities)
	}
	if got.Attendance != 170 || !approx(got.TotalRevenue, 1800) {
		t.Errorf("attendance = %d revenue = %v", got.Attendance, got.TotalRevenue)
	}
}

// 变换后的副本满足 上座 = Σ数量、收入 = Σ收入、容量 = Σ座区容量
func TestTransformRederivesAggregates(t *testing.T) {
	cfg := DefaultViewConfig()
	option := []ViewOptions{
		ViewTotal.Options(All(), false),
		ViewGameDayOnly.Options(All(), true),
		EfficiencyOptions(Only(string(ZoneTribunaGold)), false),
	}
	for _, opts := range option {
		for _, e := range Transform(testEvents(), opts, cfg) {
			qty, rev, capacity := 0, 0.0, 0
			for _, li := range e.SalesBreakdown {
				qty += li.Quantity
				rev += li.Revenue
			}
			for _, c := range e.ZoneCapacities {
				capacity += c
			}
			if e.Attendance != qty || !approx(e.TotalRevenue, rev) || e.Capacity != capacity {
				t.Errorf("%s: aggregates not re-derived (%d/%d, %v/%v, %d/%d)",
					e.ID, e.Attendance, qty, e.TotalRevenue, rev, e.Capacity, capacity)
			}
		}
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	events := testEvents()
	before := events[0]
	lines := len(before.SalesBreakdown)
	Transform(events, ViewGameDayOnly.Options(Only(string(ZoneCurva)), true), DefaultViewConfig())

	if len(events[0].SalesBreakdown) != lines || events[0].Attendance != before.Attendance {
		t.Fatal("input event was modified")
	}
	if events[0].ZoneCapacities[ZoneTribunaGold] != 1500 || len(events[0].ZoneCapacities) != 3 {
		t.Fatalf("input capacities were modified: %v", events[0].ZoneCapacities)
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ViewMode
		wantErr bool
	}{
		{"", ViewTotal, false},
		{"total", ViewTotal, false},
		{"gameday", ViewGameDayOnly, false},
		{"weekly", "", true},
	}
	for _, tt := range tests {
		got, err := ParseViewMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseViewMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}
