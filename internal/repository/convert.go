package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ArenaRevenue/internal/analytics"
	"ArenaRevenue/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

var errMissingEventKey = errors.New("event id is required")

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// toTicketingRecords 转换为数据库模型；明细的 EventID 在入库时回填
func toTicketingRecords(e analytics.TicketingEvent) (*model.TicketingEventRecord, []*model.SalesLineRecord, error) {
	if e.ID == "" {
		return nil, nil, errMissingEventKey
	}
	caps := make(map[string]int, len(e.ZoneCapacities))
	for z, c := range e.ZoneCapacities {
		caps[string(z)] = c
	}
	raw, err := json.Marshal(caps)
	if err != nil {
		return nil, nil, fmt.Errorf("序列化座区容量失败: %w, event: %s", err, e.ID)
	}

	rec := &model.TicketingEventRecord{
		EventKey:       e.ID,
		EventTime:      e.Date,
		Season:         e.Season,
		League:         e.League,
		Opponent:       e.Opponent,
		Tier:           e.Tier,
		OpponentRank:   e.OpponentRank,
		TeamRank:       e.TeamRank,
		ZoneCapacities: datatypes.JSON(raw),
	}

	// 同一座区同一渠道合并为一行
	type key struct {
		zone    analytics.Zone
		channel analytics.Channel
	}
	index := make(map[key]*model.SalesLineRecord)
	lines := make([]*model.SalesLineRecord, 0, len(e.SalesBreakdown))
	for _, li := range e.SalesBreakdown {
		k := key{li.Zone, li.Channel}
		if existing, ok := index[k]; ok {
			existing.Quantity += li.Quantity
			existing.Revenue = existing.Revenue.Add(money(li.Revenue))
			continue
		}
		line := &model.SalesLineRecord{
			Zone:     string(li.Zone),
			Channel:  string(li.Channel),
			Quantity: li.Quantity,
			Revenue:  money(li.Revenue),
		}
		index[k] = line
		lines = append(lines, line)
	}
	return rec, lines, nil
}

// fromTicketingRecords 还原为分析模型，并按明细与容量表推导上座、收入、总容量
func fromTicketingRecords(rec *model.TicketingEventRecord, lines []*model.SalesLineRecord) (analytics.TicketingEvent, error) {
	var caps map[string]int
	if len(rec.ZoneCapacities) > 0 {
		if err := json.Unmarshal(rec.ZoneCapacities, &caps); err != nil {
			return analytics.TicketingEvent{}, fmt.Errorf("解析座区容量失败: %w, event: %s", err, rec.EventKey)
		}
	}

	e := analytics.TicketingEvent{
		ID:             rec.EventKey,
		Date:           rec.EventTime,
		Season:         rec.Season,
		League:         rec.League,
		Opponent:       rec.Opponent,
		Tier:           rec.Tier,
		OpponentRank:   rec.OpponentRank,
		TeamRank:       rec.TeamRank,
		ZoneCapacities: make(map[analytics.Zone]int, len(caps)),
		SalesBreakdown: make([]analytics.SalesLineItem, 0, len(lines)),
	}
	for z, c := range caps {
		e.ZoneCapacities[analytics.Zone(z)] = c
		e.Capacity += c
	}
	for _, l := range lines {
		li := analytics.SalesLineItem{
			Zone:     analytics.Zone(l.Zone),
			Channel:  analytics.Channel(l.Channel),
			Quantity: l.Quantity,
			Revenue:  l.Revenue.InexactFloat64(),
		}
		e.SalesBreakdown = append(e.SalesBreakdown, li)
		e.Attendance += li.Quantity
		e.TotalRevenue += li.Revenue
	}
	return e, nil
}

func toGameDayRecord(g analytics.GameDayEvent) *model.GameDayEventRecord {
	return &model.GameDayEventRecord{
		EventDate:          g.Date,
		Season:             g.Season,
		League:             g.League,
		Opponent:           g.Opponent,
		Attendance:         g.Attendance,
		TotalRevenue:       money(g.TotalRevenue),
		TixRevenue:         money(g.TixRevenue),
		MerchRevenue:       money(g.MerchRevenue),
		FBRevenue:          money(g.FBRevenue),
		HospitalityRevenue: money(g.HospitalityRevenue),
		ParkingRevenue:     money(g.ParkingRevenue),
		SponsorshipRevenue: money(g.SponsorshipRevenue),
		TVRevenue:          money(g.TVRevenue),
		ExpRevenue:         money(g.ExpRevenue),
	}
}

// toGameDayRecords 按 (比赛日期, 赛季, 对手) 去重，后出现的覆盖先出现的，保持首次出现的顺序
func toGameDayRecords(events []analytics.GameDayEvent) []*model.GameDayEventRecord {
	type key struct {
		date     string
		season   string
		opponent string
	}
	index := make(map[key]int, len(events))
	records := make([]*model.GameDayEventRecord, 0, len(events))
	for _, g := range events {
		k := key{g.Date.Format(time.DateOnly), g.Season, g.Opponent}
		if i, ok := index[k]; ok {
			records[i] = toGameDayRecord(g)
			continue
		}
		index[k] = len(records)
		records = append(records, toGameDayRecord(g))
	}
	return records
}

func fromGameDayRecord(r *model.GameDayEventRecord) analytics.GameDayEvent {
	return analytics.GameDayEvent{
		Date:               r.EventDate,
		Season:             r.Season,
		League:             r.League,
		Opponent:           r.Opponent,
		Attendance:         r.Attendance,
		TotalRevenue:       r.TotalRevenue.InexactFloat64(),
		TixRevenue:         r.TixRevenue.InexactFloat64(),
		MerchRevenue:       r.MerchRevenue.InexactFloat64(),
		FBRevenue:          r.FBRevenue.InexactFloat64(),
		HospitalityRevenue: r.HospitalityRevenue.InexactFloat64(),
		ParkingRevenue:     r.ParkingRevenue.InexactFloat64(),
		SponsorshipRevenue: r.SponsorshipRevenue.InexactFloat64(),
		TVRevenue:          r.TVRevenue.InexactFloat64(),
		ExpRevenue:         r.ExpRevenue.InexactFloat64(),
	}
}
