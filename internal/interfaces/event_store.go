package interfaces

import (
	"context"

	"ArenaRevenue/internal/analytics"
)

// EventSource 分析快照的数据来源
type EventSource interface {
	ListTicketingEvents(ctx context.Context) ([]analytics.TicketingEvent, error) // 全部票务比赛，按比赛时间升序
	ListGameDayEvents(ctx context.Context) ([]analytics.GameDayEvent, error)     // 全部比赛日收入，按日期升序
}

// EventSink 导入方写入已解析的数据（按比赛标识幂等覆盖）；两类数据在同一事务内写入，失败时都不落库
type EventSink interface {
	SaveBatch(ctx context.Context, ticketing []analytics.TicketingEvent, gameDay []analytics.GameDayEvent) error
}

// EventStore 通用数据库操作接口
type EventStore interface {
	EventSource
	EventSink
}
