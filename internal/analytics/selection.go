package analytics

import (
	"encoding/json"
	"sort"
)

// Selection 单个筛选维度的取值：All（不限）或一个取值集合。
// 零值即 All；空集合是合法的选择，表示没有任何值被接受。
type Selection struct {
	restricted bool
	values     map[string]struct{}
}

// All 不限
func All() Selection { return Selection{} }

// Only 仅接受给定取值（可以为空）
func Only(values ...string) Selection {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return Selection{restricted: true, values: m}
}

// IsAll 是否不限
func (s Selection) IsAll() bool { return !s.restricted }

// Contains 取值是否被接受
func (s Selection) Contains(v string) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.values[v]
	return ok
}

// Values 排序后的取值；All 返回 nil
func (s Selection) Values() []string {
	if !s.restricted {
		return nil
	}
	out := make([]string, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON All 编码为 null，集合编码为数组
func (s Selection) MarshalJSON() ([]byte, error) {
	if !s.restricted {
		return []byte("null"), nil
	}
	return json.Marshal(s.Values())
}

// UnmarshalJSON null 解码为 All，数组（含空数组）解码为集合
func (s *Selection) UnmarshalJSON(data []byte) error {
	var values *[]string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if values == nil {
		*s = All()
		return nil
	}
	*s = Only(*values...)
	return nil
}

// Dimension 筛选维度
type Dimension string

const (
	DimSeason   Dimension = "season"
	DimLeague   Dimension = "league"
	DimOpponent Dimension = "opponent"
	DimTier     Dimension = "tier"
	DimDay      Dimension = "day"
	DimZone     Dimension = "zone"
	DimDate     Dimension = "date"
	DimTime     Dimension = "time"
)

// Dimensions 全部维度
var Dimensions = []Dimension{DimSeason, DimLeague, DimOpponent, DimTier, DimDay, DimZone, DimDate, DimTime}

// ParseDimension 校验维度名
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", ErrUnknownDimension
}

// FilterSelection 每个维度一个 Selection，维度之间为 AND
type FilterSelection struct {
	Season   Selection `json:"season"`
	League   Selection `json:"league"`
	Opponent Selection `json:"opponent"`
	Tier     Selection `json:"tier"`
	Day      Selection `json:"day"`
	Zone     Selection `json:"zone"`
	Date     Selection `json:"date"`
	Time     Selection `json:"time"`
}

// Get 取某维度的选择
func (f FilterSelection) Get(d Dimension) Selection {
	switch d {
	case DimSeason:
		return f.Season
	case DimLeague:
		return f.League
	case DimOpponent:
		return f.Opponent
	case DimTier:
		return f.Tier
	case DimDay:
		return f.Day
	case DimZone:
		return f.Zone
	case DimDate:
		return f.Date
	case DimTime:
		return f.Time
	}
	return All()
}

// With 返回替换了某维度的副本
func (f FilterSelection) With(d Dimension, s Selection) FilterSelection {
	switch d {
	case DimSeason:
		f.Season = s
	case DimLeague:
		f.League = s
	case DimOpponent:
		f.Opponent = s
	case DimTier:
		f.Tier = s
	case DimDay:
		f.Day = s
	case DimZone:
		f.Zone = s
	case DimDate:
		f.Date = s
	case DimTime:
		f.Time = s
	}
	return f
}
