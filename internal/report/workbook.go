package report

import (
	"fmt"
	"time"

	"ArenaRevenue/internal/analytics"

	"github.com/xuri/excelize/v2"
)

const (
	SheetOverview   = "概览"
	SheetDistressed = "滞销座区"
	SheetPacing     = "赛季进度"
	SheetGameDay    = "比赛日收入"
)

// BoardReport 董事会报表所需的全部结果；为 nil 的部分输出“无数据”
type BoardReport struct {
	RunID       string
	GeneratedAt time.Time
	DataVersion string
	Scope       string
	View        analytics.ViewMode
	KPIs        *analytics.KPISet
	Efficiency  *analytics.KPISet
	Targets     *analytics.TargetSet
	Distressed  analytics.DistressReport
	Pacing      *analytics.PacingResult
	Portfolio   *analytics.Portfolio
	GameDay     *analytics.GameDaySummary
}

// Filename 下载文件名
func Filename(r BoardReport) string {
	return fmt.Sprintf("board-report-%s-%s.xlsx", r.GeneratedAt.Format("20060102"), r.RunID)
}

// Build 生成报表工作簿
func Build(r BoardReport) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetOverview)
	for _, name := range []string{SheetDistressed, SheetPacing, SheetGameDay} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("创建工作表%s失败: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("创建样式失败: %w", err)
	}

	writers := []struct {
		sheet string
		rows  [][]interface{}
	}{
		{SheetOverview, overviewRows(r)},
		{SheetDistressed, distressedRows(r.Distressed)},
		{SheetPacing, pacingRows(r.Pacing, r.Portfolio)},
		{SheetGameDay, gameDayRows(r.GameDay)},
	}
	for _, w := range writers {
		if err := writeRows(f, w.sheet, w.rows); err != nil {
			return nil, err
		}
		f.SetRowStyle(w.sheet, 1, 1, headerStyle)
		f.SetColWidth(w.sheet, "A", "A", 28)
		f.SetColWidth(w.sheet, "B", "H", 16)
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("写入%s第%d行失败: %w", sheet, i+1, err)
		}
	}
	return nil
}

func pct(v float64) string { return fmt.Sprintf("%.1f%%", v) }

func overviewRows(r BoardReport) [][]interface{} {
	rows := [][]interface{}{
		{"指标", "数值", "目标", "偏差"},
		{"报表编号", r.RunID},
		{"生成时间", r.GeneratedAt.Format("2006-01-02 15:04")},
		{"数据版本", r.DataVersion},
		{"筛选范围", r.Scope},
		{"视图", string(r.View)},
	}
	k := r.KPIs
	if k == nil {
		return append(rows, []interface{}{"无数据"})
	}

	target := func(m analytics.Metric) (interface{}, interface{}) {
		if r.Targets == nil {
			return "", ""
		}
		for _, mt := range r.Targets.Metrics {
			if mt.Metric == m && mt.HasTarget {
				return mt.Target, pct(mt.Variance)
			}
		}
		return "", ""
	}
	metric := func(label string, m analytics.Metric, value interface{}) []interface{} {
		t, v := target(m)
		return []interface{}{label, value, t, v}
	}

	rows = append(rows,
		[]interface{}{"场次", k.GameCount},
		metric("总收入", analytics.MetricTotalRevenue, k.TotalRevenue),
		metric("场均收入 (ARPG)", analytics.MetricARPG, k.ARPG),
		metric("场均上座", analytics.MetricAvgAttendance, k.AvgAttendance),
		metric("平均票价 (Yield)", analytics.MetricYieldATP, k.YieldATP),
		metric("RevPAS", analytics.MetricRevPAS, k.RevPAS),
		metric("上座率", analytics.MetricOccupancy, pct(k.Occupancy)),
		metric("赠票率", analytics.MetricGiveawayRate, pct(k.GiveawayRate)),
		[]interface{}{"企业收入占比", pct(k.CorpShare)},
		[]interface{}{"销量最高座区", k.TopZone},
	)
	if r.Targets != nil {
		rows = append(rows, []interface{}{"基准赛季", r.Targets.BaselineSeason})
	}
	if e := r.Efficiency; e != nil {
		rows = append(rows,
			[]interface{}{"比赛日渠道收入", e.TotalRevenue},
			[]interface{}{"比赛日可售上座率", pct(e.Occupancy)},
		)
	}
	return rows
}

func distressedRows(d analytics.DistressReport) [][]interface{} {
	rows := [][]interface{}{{"座区", "容量", "已售", "上座率", "未售", "参考票价", "潜在收入"}}
	for _, z := range d.Zones {
		rows = append(rows, []interface{}{
			string(z.Zone), z.Capacity, z.Sold, pct(z.FillRate), z.Unsold, z.YieldUsed, z.PotentialRevenue,
		})
	}
	return append(rows, []interface{}{"合计", "", "", "", "", "", d.TotalPotentialRevenue})
}

func pacingRows(p *analytics.PacingResult, portfolio *analytics.Portfolio) [][]interface{} {
	rows := [][]interface{}{{"项目", "数值"}}
	if p == nil {
		rows = append(rows, []interface{}{"票务进度", "无定义"})
	} else {
		rows = append(rows,
			[]interface{}{"赛季进度", pct(p.SeasonProgress)},
			[]interface{}{"收入进度", pct(p.RevenueProgress)},
			[]interface{}{"进度差", pct(p.PacingDelta)},
			[]interface{}{"场均收入", p.RunRate},
			[]interface{}{"预计完赛收入", p.ProjectedFinish},
			[]interface{}{"与目标差额", p.ProjectionDiff},
		)
	}
	if portfolio == nil {
		return rows
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"业务线", "目标", "当前", "应达", "进度偏差", "预计完赛", "有数据"},
	)
	for _, v := range portfolio.Verticals {
		rows = append(rows, []interface{}{
			v.Name, v.Target, v.Current, v.Expected, pct(v.PacePct), v.ProjectedFinish, v.HasData,
		})
	}
	return append(rows,
		[]interface{}{"合计", portfolio.TotalTarget, portfolio.TotalYTD, "", pct(portfolio.PacingDelta), portfolio.TotalProjected},
	)
}

func gameDayRows(s *analytics.GameDaySummary) [][]interface{} {
	rows := [][]interface{}{{"收入项", "合计"}}
	if s == nil {
		return append(rows, []interface{}{"无数据"})
	}
	return append(rows,
		[]interface{}{"场次", s.GameCount},
		[]interface{}{"入场人数", s.TotalAttendance},
		[]interface{}{"总收入", s.TotalRevenue},
		[]interface{}{"票务", s.TixRevenue},
		[]interface{}{"餐饮", s.FBRevenue},
		[]interface{}{"周边", s.MerchRevenue},
		[]interface{}{"款待", s.HospitalityRevenue},
		[]interface{}{"停车", s.ParkingRevenue},
		[]interface{}{"赞助", s.SponsorshipRevenue},
		[]interface{}{"转播", s.TVRevenue},
		[]interface{}{"体验活动", s.ExpRevenue},
		[]interface{}{"扣除票务后", s.NetOfTicketing},
		[]interface{}{"人均消费", s.PerCapita},
	)
}
