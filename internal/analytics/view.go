package analytics

// ViewConfig 视图变换所需的固定配置，由调用方显式传入
type ViewConfig struct {
	GuestZone       Zone         // 客队区标识
	GameDayChannels []Channel    // 比赛日可归属渠道
	FixedCapacity   map[Zone]int // 比赛日视图下各区需扣除的季前锁定席位
}

// DefaultViewConfig 本赛季默认配置
func DefaultViewConfig() ViewConfig {
	fixed := make(map[Zone]int, len(DefaultFixedCapacity))
	for z, n := range DefaultFixedCapacity {
		fixed[z] = n
	}
	return ViewConfig{
		GuestZone:       ZoneGuest,
		GameDayChannels: append([]Channel(nil), DefaultGameDayChannels...),
		FixedCapacity:   fixed,
	}
}

func (c ViewConfig) allowsChannel(ch Channel) bool {
	for _, allowed := range c.GameDayChannels {
		if allowed == ch {
			return true
		}
	}
	return false
}

// ViewOptions 视图变换的各个阶段。
// 渠道限制与锁定席位扣除是两个独立开关，部分调用方只需要其中之一。
type ViewOptions struct {
	Zones               Selection
	ExcludeGuestZone    bool
	RestrictChannels    bool // 仅保留比赛日渠道
	DeductFixedCapacity bool // 扣除季前锁定席位，下限为 0
}

// Options 视图模式对应的阶段组合：total 不做渠道限制与扣除，gameday 两者都做
func (m ViewMode) Options(zones Selection, excludeGuest bool) ViewOptions {
	gameDay := m == ViewGameDayOnly
	return ViewOptions{
		Zones:               zones,
		ExcludeGuestZone:    excludeGuest,
		RestrictChannels:    gameDay,
		DeductFixedCapacity: gameDay,
	}
}

// EfficiencyOptions 效率/企业视图：无论视图模式，始终限制为比赛日渠道并扣除锁定席位
func EfficiencyOptions(zones Selection, excludeGuest bool) ViewOptions {
	return ViewOptions{
		Zones:               zones,
		ExcludeGuestZone:    excludeGuest,
		RestrictChannels:    true,
		DeductFixedCapacity: true,
	}
}

// Transform 对每场比赛生成视图副本，不修改输入
func Transform(events []TicketingEvent, opts ViewOptions, cfg ViewConfig) []TicketingEvent {
	out := make([]TicketingEvent, 0, len(events))
	for _, e := range events {
		out = append(out, TransformEvent(e, opts, cfg))
	}
	return out
}

// TransformEvent 单场视图变换：
// 先按客队区、座区、渠道过滤明细并重算上座与收入，再按同样的座区规则过滤容量表，
// 需要时扣除锁定席位，最后重算总容量。
func TransformEvent(e TicketingEvent, opts ViewOptions, cfg ViewConfig) TicketingEvent {
	out := e
	out.SalesBreakdown = make([]SalesLineItem, 0, len(e.SalesBreakdown))
	out.Attendance = 0
	out.TotalRevenue = 0
	for _, li := range e.SalesBreakdown {
		if !zoneIncluded(li.Zone, opts, cfg) {
			continue
		}
		if opts.RestrictChannels && !cfg.allowsChannel(li.Channel) {
			continue
		}
		out.SalesBreakdown = append(out.SalesBreakdown, li)
		out.Attendance += li.Quantity
		out.TotalRevenue += li.Revenue
	}

	out.ZoneCapacities = make(map[Zone]int, len(e.ZoneCapacities))
	out.Capacity = 0
	for z, capacity := range e.ZoneCapacities {
		if !zoneIncluded(z, opts, cfg) {
			continue
		}
		if opts.DeductFixedCapacity {
			capacity -= cfg.FixedCapacity[z]
			if capacity < 0 {
				capacity = 0
			}
		}
		out.ZoneCapacities[z] = capacity
		out.Capacity += capacity
	}
	return out
}

func zoneIncluded(z Zone, opts ViewOptions, cfg ViewConfig) bool {
	if opts.ExcludeGuestZone && z == cfg.GuestZone {
		return false
	}
	return opts.Zones.Contains(string(z))
}
