package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TicketingEventRecord 单场票务比赛。上座、收入、总容量由明细与座区容量推导，不落库
type TicketingEventRecord struct {
	ID             uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	EventUUID      string         `gorm:"column:event_uuid;type:varchar(64);uniqueIndex;not null;comment:全局唯一ID"`
	EventKey       string         `gorm:"column:event_key;type:varchar(128);uniqueIndex;not null;comment:导入方给出的比赛标识"`
	EventTime      time.Time      `gorm:"column:event_time;type:timestamp;not null;index;comment:比赛日期+开球时间"`
	Season         string         `gorm:"column:season;type:varchar(16);not null;index;comment:赛季，如 25-26"`
	League         string         `gorm:"column:league;type:varchar(64);not null;comment:联赛/赛事"`
	Opponent       string         `gorm:"column:opponent;type:varchar(128);not null;comment:对手"`
	Tier           int            `gorm:"column:tier;type:int;not null;default:0;comment:票价档次"`
	OpponentRank   int            `gorm:"column:opponent_rank;type:int;default:0;comment:对手排名"`
	TeamRank       int            `gorm:"column:team_rank;type:int;default:0;comment:本队排名"`
	ZoneCapacities datatypes.JSON `gorm:"column:zone_capacities;type:jsonb;not null;comment:各座区容量"`
	CreatedAt      time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

// SalesLineRecord 单场比赛某座区某渠道的销售汇总
type SalesLineRecord struct {
	ID       uint64          `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	EventID  uint64          `gorm:"column:event_id;type:bigint;not null;uniqueIndex:uk_event_zone_channel;comment:关联比赛ID"`
	Zone     string          `gorm:"column:zone;type:varchar(64);not null;uniqueIndex:uk_event_zone_channel;comment:座区"`
	Channel  string          `gorm:"column:channel;type:varchar(32);not null;uniqueIndex:uk_event_zone_channel;comment:销售渠道"`
	Quantity int             `gorm:"column:quantity;type:int;not null;default:0;comment:张数"`
	Revenue  decimal.Decimal `gorm:"column:revenue;type:numeric(14,2);not null;default:0;comment:收入"`
}

// GameDayEventRecord 比赛日收入（含票务）
type GameDayEventRecord struct {
	ID                 uint64          `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	EventDate          time.Time       `gorm:"column:event_date;type:date;not null;uniqueIndex:uk_gameday_match;comment:比赛日期"`
	Season             string          `gorm:"column:season;type:varchar(16);not null;uniqueIndex:uk_gameday_match;comment:赛季"`
	League             string          `gorm:"column:league;type:varchar(64);not null;comment:联赛/赛事"`
	Opponent           string          `gorm:"column:opponent;type:varchar(128);not null;uniqueIndex:uk_gameday_match;comment:对手"`
	Attendance         int             `gorm:"column:attendance;type:int;not null;default:0;comment:入场人数"`
	TotalRevenue       decimal.Decimal `gorm:"column:total_revenue;type:numeric(14,2);not null;default:0;comment:总收入（含票务）"`
	TixRevenue         decimal.Decimal `gorm:"column:tix_revenue;type:numeric(14,2);not null;default:0;comment:票务"`
	MerchRevenue       decimal.Decimal `gorm:"column:merch_revenue;type:numeric(14,2);not null;default:0;comment:周边"`
	FBRevenue          decimal.Decimal `gorm:"column:fb_revenue;type:numeric(14,2);not null;default:0;comment:餐饮"`
	HospitalityRevenue decimal.Decimal `gorm:"column:hospitality_revenue;type:numeric(14,2);not null;default:0;comment:款待"`
	ParkingRevenue     decimal.Decimal `gorm:"column:parking_revenue;type:numeric(14,2);not null;default:0;comment:停车"`
	SponsorshipRevenue decimal.Decimal `gorm:"column:sponsorship_revenue;type:numeric(14,2);not null;default:0;comment:比赛日赞助"`
	TVRevenue          decimal.Decimal `gorm:"column:tv_revenue;type:numeric(14,2);not null;default:0;comment:转播"`
	ExpRevenue         decimal.Decimal `gorm:"column:exp_revenue;type:numeric(14,2);not null;default:0;comment:体验活动"`
	CreatedAt          time.Time       `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

func (TicketingEventRecord) TableName() string { return "ticketing_events" }
func (SalesLineRecord) TableName() string      { return "sales_lines" }
func (GameDayEventRecord) TableName() string   { return "gameday_events" }
