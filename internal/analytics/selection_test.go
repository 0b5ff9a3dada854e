package analytics

import (
	"encoding/json"
	"testing"
)

func TestSelectionZeroValueIsAll(t *testing.T) {
	var s Selection
	if !s.IsAll() || !s.Contains("anything") {
		t.Fatal("zero Selection should accept every value")
	}
	if s.Values() != nil {
		t.Fatalf("All has no values, got %v", s.Values())
	}
}

func TestSelectionEmptySubset(t *testing.T) {
	s := Only()
	if s.IsAll() {
		t.Fatal("Only() must not be All")
	}
	if s.Contains("") || s.Contains("All") {
		t.Fatal("empty subset accepts nothing")
	}
}

// "All" 只是一个普通取值，不会被当作不限
func TestSelectionLiteralAllValue(t *testing.T) {
	s := Only("All")
	if s.IsAll() || s.Contains("Milano") || !s.Contains("All") {
		t.Fatal("literal \"All\" must be an ordinary member")
	}
}

func TestFilterSelectionJSON(t *testing.T) {
	var sel FilterSelection
	body := `{"season":["25-26","24-25"],"zone":[],"opponent":null}`
	if err := json.Unmarshal([]byte(body), &sel); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !equalStrings(sel.Season.Values(), []string{"24-25", "25-26"}) {
		t.Errorf("season = %v", sel.Season.Values())
	}
	if sel.Zone.IsAll() || len(sel.Zone.Values()) != 0 {
		t.Errorf("zone should be an empty subset")
	}
	if !sel.Opponent.IsAll() || !sel.Tier.IsAll() {
		t.Errorf("null and missing dimensions should be All")
	}

	out, err := json.Marshal(FilterSelection{Day: Only("Sun", "Mon")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"season":null,"league":null,"opponent":null,"tier":null,"day":["Mon","Sun"],"zone":null,"date":null,"time":null}`
	if string(out) != want {
		t.Errorf("marshal = %s\nwant %s", out, want)
	}
}

func TestFilterSelectionWith(t *testing.T) {
	base := FilterSelection{Season: Only("25-26"), Opponent: Only("Milano")}
	next := base.With(DimSeason, Only("24-25"))
	if !base.Season.Contains("25-26") || base.Season.Contains("24-25") {
		t.Fatal("With must not modify the receiver")
	}
	if !next.Season.Contains("24-25") || !next.Opponent.Contains("Milano") {
		t.Fatal("With should replace only the given dimension")
	}
}
