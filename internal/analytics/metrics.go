package analytics

// Metric KPISet 中可比较的指标
type Metric string

const (
	MetricTotalRevenue  Metric = "total_revenue"
	MetricARPG          Metric = "arpg"
	MetricAvgAttendance Metric = "avg_attendance"
	MetricYieldATP      Metric = "yield_atp"
	MetricRevPAS        Metric = "rev_pas"
	MetricOccupancy     Metric = "occupancy"
	MetricCorpShare     Metric = "corp_share"
	MetricGiveawayRate  Metric = "giveaway_rate"
)

// Inverse 越低越好的指标
func (m Metric) Inverse() bool {
	return m == MetricGiveawayRate
}

// Value 从 KPISet 取指标值
func (m Metric) Value(k *KPISet) float64 {
	if k == nil {
		return 0
	}
	switch m {
	case MetricTotalRevenue:
		return k.TotalRevenue
	case MetricARPG:
		return k.ARPG
	case MetricAvgAttendance:
		return k.AvgAttendance
	case MetricYieldATP:
		return k.YieldATP
	case MetricRevPAS:
		return k.RevPAS
	case MetricOccupancy:
		return k.Occupancy
	case MetricCorpShare:
		return k.CorpShare
	case MetricGiveawayRate:
		return k.GiveawayRate
	}
	return 0
}
