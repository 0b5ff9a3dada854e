package analytics

import (
	"errors"
	"testing"
)

func TestFilterIdentity(t *testing.T) {
	events := testEvents()
	got := Filter(events, FilterSelection{})
	if !equalStrings(ids(got), ids(events)) {
		t.Fatalf("identity filter = %v, want %v", ids(got), ids(events))
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		sel  FilterSelection
		want []string
	}{
		{"赛季", FilterSelection{Season: Only("25-26")}, []string{"e2", "e3", "e4"}},
		{"多个赛季", FilterSelection{Season: Only("24-25", "25-26")}, []string{"e1", "e2", "e3", "e4"}},
		{"空集合不匹配任何比赛", FilterSelection{Season: Only()}, []string{}},
		{"星期", FilterSelection{Day: Only("Sun")}, []string{"e1", "e2"}},
		{"档次按字符串比较", FilterSelection{Tier: Only("2", "3")}, []string{"e3", "e4"}},
		{"联赛与对手取交集", FilterSelection{League: Only("LBA"), Opponent: Only("Bursa")}, []string{}},
		{"座区：容量表中存在即通过", FilterSelection{Zone: Only(string(ZoneGuest))}, []string{"e1", "e2", "e3"}},
		{"日期", FilterSelection{Date: Only("01/11/2025")}, []string{"e3"}},
		{"开球时间", FilterSelection{Time: Only("18.00")}, []string{"e1", "e2"}},
		{"未知取值", FilterSelection{Opponent: Only("Bologna")}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(testEvents(), tt.sel))
			if !equalStrings(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableOptions(t *testing.T) {
	tests := []struct {
		name   string
		sel    FilterSelection
		target Dimension
		want   []string
	}{
		{"赛季新的在前", FilterSelection{}, DimSeason, []string{"25-26", "24-25"}},
		{"对手随赛季收窄", FilterSelection{Season: Only("25-26")}, DimOpponent, []string{"Bursa", "Milano", "Trento"}},
		{"星期按周一到周日", FilterSelection{Season: Only("25-26")}, DimDay, []string{"Wed", "Sat", "Sun"}},
		{"自身维度的选择不收窄自身", FilterSelection{Tier: Only("1")}, DimTier, []string{"1", "2", "3"}},
		{"座区取自销售明细", FilterSelection{Opponent: Only("Bursa")}, DimZone, []string{"Curva", "Tribuna Gold"}},
		{"日期按时间顺序", FilterSelection{League: Only("LBA")}, DimDate, []string{"06/10/2024", "12/10/2025", "01/11/2025"}},
		{"空集合没有选项", FilterSelection{Season: Only()}, DimOpponent, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableOptions(testEvents(), tt.sel, tt.target)
			if !equalStrings(got, tt.want) {
				t.Errorf("AvailableOptions(%s) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestSeasonsAscending(t *testing.T) {
	got := Seasons(testEvents())
	if !equalStrings(got, []string{"24-25", "25-26"}) {
		t.Fatalf("Seasons() = %v", got)
	}
}

func TestParseDimension(t *testing.T) {
	if d, err := ParseDimension("opponent"); err != nil || d != DimOpponent {
		t.Fatalf("ParseDimension(opponent) = %q, %v", d, err)
	}
	if _, err := ParseDimension("weather"); !errors.Is(err, ErrUnknownDimension) {
		t.Fatalf("expected ErrUnknownDimension, got %v", err)
	}
}
