package repository

import (
	"context"
	"fmt"

	"ArenaRevenue/internal/analytics"
	"ArenaRevenue/internal/interfaces"
	"ArenaRevenue/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建票务/比赛日数据仓储
func NewEventRepository(db *gorm.DB) interfaces.EventStore {
	return &eventRepository{db: db}
}

// ListTicketingEvents 拉取全部比赛与明细，明细按比赛分组后还原
func (r *eventRepository) ListTicketingEvents(ctx context.Context) ([]analytics.TicketingEvent, error) {
	var records []*model.TicketingEventRecord
	if err := r.db.WithContext(ctx).Order("event_time ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询票务比赛失败: %w", err)
	}
	if len(records) == 0 {
		return []analytics.TicketingEvent{}, nil
	}

	var lines []*model.SalesLineRecord
	if err := r.db.WithContext(ctx).Order("event_id ASC, zone ASC, channel ASC").Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("查询销售明细失败: %w", err)
	}
	byEvent := make(map[uint64][]*model.SalesLineRecord, len(records))
	for _, l := range lines {
		byEvent[l.EventID] = append(byEvent[l.EventID], l)
	}

	out := make([]analytics.TicketingEvent, 0, len(records))
	for _, rec := range records {
		e, err := fromTicketingRecords(rec, byEvent[rec.ID])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// SaveBatch 票务与比赛日数据在同一事务内写入，任一失败整体回滚
func (r *eventRepository) SaveBatch(ctx context.Context, ticketing []analytics.TicketingEvent, gameDay []analytics.GameDayEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveTicketing(tx, ticketing); err != nil {
			return err
		}
		return saveGameDay(tx, gameDay)
	})
}

// saveTicketing 按 event_key upsert 比赛，并整体替换该场的销售明细
func saveTicketing(tx *gorm.DB, events []analytics.TicketingEvent) error {
	for _, e := range events {
		rec, lines, err := toTicketingRecords(e)
		if err != nil {
			return err
		}
		rec.EventUUID = uuid.NewString()
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "event_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"event_time", "season", "league", "opponent", "tier",
				"opponent_rank", "team_rank", "zone_capacities", "updated_at",
			}),
		}).Create(rec).Error; err != nil {
			return fmt.Errorf("保存比赛失败: %w, event: %s", err, e.ID)
		}
		// 冲突更新时部分驱动不回填主键
		if err := tx.Model(rec).Where("event_key = ?", rec.EventKey).Select("id").First(rec).Error; err != nil {
			return fmt.Errorf("查询比赛ID失败: %w, event: %s", err, e.ID)
		}

		if err := tx.Where("event_id = ?", rec.ID).Delete(&model.SalesLineRecord{}).Error; err != nil {
			return fmt.Errorf("清理销售明细失败: %w, event: %s", err, e.ID)
		}
		if len(lines) == 0 {
			continue
		}
		for _, l := range lines {
			l.EventID = rec.ID
		}
		if err := tx.CreateInBatches(lines, 200).Error; err != nil {
			return fmt.Errorf("保存销售明细失败: %w, event: %s", err, e.ID)
		}
	}
	return nil
}

// ListGameDayEvents 按日期升序
func (r *eventRepository) ListGameDayEvents(ctx context.Context) ([]analytics.GameDayEvent, error) {
	var records []*model.GameDayEventRecord
	if err := r.db.WithContext(ctx).Order("event_date ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询比赛日收入失败: %w", err)
	}
	out := make([]analytics.GameDayEvent, 0, len(records))
	for _, rec := range records {
		out = append(out, fromGameDayRecord(rec))
	}
	return out, nil
}

// saveGameDay 同一赛季同一日期同一对手视为同一场，重复导入时覆盖金额。
// 同一批内重复的场次只保留最后一条，否则 ON CONFLICT 会两次命中同一行。
func saveGameDay(tx *gorm.DB, events []analytics.GameDayEvent) error {
	records := toGameDayRecords(events)
	if len(records) == 0 {
		return nil
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_date"}, {Name: "season"}, {Name: "opponent"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"league", "attendance", "total_revenue", "tix_revenue", "merch_revenue", "fb_revenue",
			"hospitality_revenue", "parking_revenue", "sponsorship_revenue", "tv_revenue", "exp_revenue", "updated_at",
		}),
	}).CreateInBatches(records, 200).Error
	if err != nil {
		return fmt.Errorf("保存比赛日收入失败: %w", err)
	}
	return nil
}
