package analytics

import (
	"sort"
	"strconv"
	"time"
)

// Filter 返回满足全部维度筛选的比赛，保持输入顺序
func Filter(events []TicketingEvent, sel FilterSelection) []TicketingEvent {
	out := make([]TicketingEvent, 0, len(events))
	for _, e := range events {
		if matches(e, sel, "") {
			out = append(out, e)
		}
	}
	return out
}

// matches 逐维度判断；skip 指定的维度不参与判断（用于下拉选项联动）
func matches(e TicketingEvent, sel FilterSelection, skip Dimension) bool {
	for _, d := range Dimensions {
		if d == skip {
			continue
		}
		s := sel.Get(d)
		if s.IsAll() {
			continue
		}
		if d == DimZone {
			if !hasAnyZone(e, s) {
				return false
			}
			continue
		}
		if !s.Contains(dimensionValue(e, d)) {
			return false
		}
	}
	return true
}

func hasAnyZone(e TicketingEvent, s Selection) bool {
	for z := range e.ZoneCapacities {
		if s.Contains(string(z)) {
			return true
		}
	}
	for _, li := range e.SalesBreakdown {
		if s.Contains(string(li.Zone)) {
			return true
		}
	}
	return false
}

func dimensionValue(e TicketingEvent, d Dimension) string {
	switch d {
	case DimSeason:
		return e.Season
	case DimLeague:
		return e.League
	case DimOpponent:
		return e.Opponent
	case DimTier:
		return TierLabel(e.Tier)
	case DimDay:
		return DayName(e.Date)
	case DimDate:
		return DateLabel(e.Date)
	case DimTime:
		return KickoffLabel(e.Date)
	}
	return ""
}

// AvailableOptions 某维度的可选值：应用其余维度的当前选择后，收集该维度的去重取值并排序。
// 多个筛选组合时下拉选项互相收窄。
func AvailableOptions(events []TicketingEvent, sel FilterSelection, target Dimension) []string {
	seen := make(map[string]struct{})
	for _, e := range events {
		if !matches(e, sel, target) {
			continue
		}
		if target == DimZone {
			for _, li := range e.SalesBreakdown {
				seen[string(li.Zone)] = struct{}{}
			}
			continue
		}
		seen[dimensionValue(e, target)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sortOptions(out, target)
	return out
}

func sortOptions(values []string, d Dimension) {
	switch d {
	case DimSeason:
		// 最新赛季在前
		sort.Sort(sort.Reverse(sort.StringSlice(values)))
	case DimTier:
		sort.Slice(values, func(i, j int) bool {
			a, _ := strconv.Atoi(values[i])
			b, _ := strconv.Atoi(values[j])
			if a != b {
				return a < b
			}
			return values[i] < values[j]
		})
	case DimDay:
		sort.Slice(values, func(i, j int) bool { return dayOrder[values[i]] < dayOrder[values[j]] })
	case DimDate:
		sort.Slice(values, func(i, j int) bool {
			a, errA := time.Parse("02/01/2006", values[i])
			b, errB := time.Parse("02/01/2006", values[j])
			if errA != nil || errB != nil {
				return values[i] < values[j]
			}
			return a.Before(b)
		})
	default:
		sort.Strings(values)
	}
}

// Seasons 数据中出现过的赛季，升序
func Seasons(events []TicketingEvent) []string {
	seen := make(map[string]struct{})
	for _, e := range events {
		seen[e.Season] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
