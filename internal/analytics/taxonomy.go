package analytics

// Zone 场馆座区（各自独立的容量与票价）
type Zone string

const (
	ZoneSkybox            Zone = "Skyboxes"
	ZoneCourtside         Zone = "Courtside"
	ZoneParterreOvest     Zone = "Parterre Ovest"
	ZoneParterreEst       Zone = "Parterre Est"
	ZoneParterreExclusive Zone = "Parterre Exclusive"
	ZoneTribunaGold       Zone = "Tribuna Gold"
	ZoneTribunaSilver     Zone = "Tribuna Silver"
	ZoneGalleriaGold      Zone = "Galleria Gold"
	ZoneGalleriaSilver    Zone = "Galleria Silver"
	ZoneCurva             Zone = "Curva"
	ZoneGuest             Zone = "Ospiti" // 客队球迷区
)

// AllZones 按票价从高到低排列
var AllZones = []Zone{
	ZoneSkybox,
	ZoneCourtside,
	ZoneParterreExclusive,
	ZoneParterreOvest,
	ZoneParterreEst,
	ZoneTribunaGold,
	ZoneTribunaSilver,
	ZoneGalleriaGold,
	ZoneGalleriaSilver,
	ZoneCurva,
	ZoneGuest,
}

// Channel 销售渠道
type Channel string

const (
	ChannelTicketOffice  Channel = "ticket_office"  // 单场票（窗口/线上）
	ChannelMobile        Channel = "mobile"         // 移动端/小套票
	ChannelVendorBooth   Channel = "vendor_booth"   // 场馆摊位（青训合作）
	ChannelGiveaway      Channel = "giveaway"       // 动态赠票
	ChannelCorporate     Channel = "corporate"      // 企业团购
	ChannelSeasonPackage Channel = "season_package" // 季票
	ChannelProtocol      Channel = "protocol"       // 固定礼宾票
)

// AllChannels 全部渠道
var AllChannels = []Channel{
	ChannelTicketOffice,
	ChannelMobile,
	ChannelVendorBooth,
	ChannelGiveaway,
	ChannelCorporate,
	ChannelSeasonPackage,
	ChannelProtocol,
}

// DefaultGameDayChannels 比赛日可归属的渠道（季票、企业、礼宾在夏季已锁定）
var DefaultGameDayChannels = []Channel{
	ChannelTicketOffice,
	ChannelMobile,
	ChannelVendorBooth,
	ChannelGiveaway,
}

// IsComplimentary 赠票类渠道（计入赠票率）
func (c Channel) IsComplimentary() bool {
	return c == ChannelGiveaway || c == ChannelProtocol
}

// DefaultFixedCapacity 各区季前锁定席位（季票+企业+礼宾），比赛日视图从容量中扣除
var DefaultFixedCapacity = map[Zone]int{
	ZoneParterreOvest:     223,
	ZoneParterreEst:       94,
	ZoneTribunaGold:       1230,
	ZoneTribunaSilver:     261,
	ZoneGalleriaGold:      282,
	ZoneGalleriaSilver:    70,
	ZoneCurva:             314,
	ZoneCourtside:         38,
	ZoneSkybox:            60,
	ZoneGuest:             0,
	ZoneParterreExclusive: 68,
}
