package analytics

import (
	"strconv"
	"time"
)

// SalesLineItem 单场比赛某座区某渠道的销售汇总
type SalesLineItem struct {
	Zone     Zone    `json:"zone"`
	Channel  Channel `json:"channel"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// TicketingEvent 单场票务数据。
// 原始状态下 Attendance/TotalRevenue/Capacity 分别等于明细数量、明细收入、座区容量之和；
// 经过视图变换的副本会基于过滤后的明细重新计算这三个字段。
type TicketingEvent struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"` // 比赛日期 + 开球时间
	Season         string          `json:"season"`
	League         string          `json:"league"`
	Opponent       string          `json:"opponent"`
	Tier           int             `json:"tier"`
	OpponentRank   int             `json:"opponent_rank,omitempty"` // 0 表示未知
	TeamRank       int             `json:"team_rank,omitempty"`
	Attendance     int             `json:"attendance"`
	TotalRevenue   float64         `json:"total_revenue"`
	Capacity       int             `json:"capacity"`
	ZoneCapacities map[Zone]int    `json:"zone_capacities"`
	SalesBreakdown []SalesLineItem `json:"sales_breakdown"`
}

// GameDayEvent 比赛日非票务收入；TotalRevenue 含 TixRevenue
type GameDayEvent struct {
	Date               time.Time `json:"date"`
	Season             string    `json:"season"`
	League             string    `json:"league"`
	Opponent           string    `json:"opponent"`
	Attendance         int       `json:"attendance"`
	TotalRevenue       float64   `json:"total_revenue"`
	TixRevenue         float64   `json:"tix_revenue"`
	MerchRevenue       float64   `json:"merch_revenue"`
	FBRevenue          float64   `json:"fb_revenue"`
	HospitalityRevenue float64   `json:"hospitality_revenue"`
	ParkingRevenue     float64   `json:"parking_revenue"`
	SponsorshipRevenue float64   `json:"sponsorship_revenue"`
	TVRevenue          float64   `json:"tv_revenue"`
	ExpRevenue         float64   `json:"exp_revenue"`
}

// NetOfTicketing 扣除票务后的比赛日收入
func (g GameDayEvent) NetOfTicketing() float64 {
	return g.TotalRevenue - g.TixRevenue
}

// ViewMode 视图模式
type ViewMode string

const (
	ViewTotal       ViewMode = "total"
	ViewGameDayOnly ViewMode = "gameday"
)

// ParseViewMode 空字符串视为 total
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "", ViewTotal:
		return ViewTotal, nil
	case ViewGameDayOnly:
		return ViewGameDayOnly, nil
	}
	return "", ErrUnknownViewMode
}

var dayOrder = map[string]int{"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6}

// DayName 三字母星期（与 locale 无关）
func DayName(t time.Time) string {
	return t.Weekday().String()[:3]
}

// DateLabel 日/月/年
func DateLabel(t time.Time) string {
	return t.Format("02/01/2006")
}

// KickoffLabel 开球时间，如 20.30
func KickoffLabel(t time.Time) string {
	return t.Format("15.04")
}

// TierLabel 档位按字符串比较
func TierLabel(tier int) string {
	return strconv.Itoa(tier)
}

// DayName 比赛星期
func (e TicketingEvent) DayName() string { return DayName(e.Date) }
