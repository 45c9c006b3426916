// Package echarts renders the report's charts as standalone HTML pages.
package echarts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"legion-stats/domain/legion"
)

// Series colors, carried over from the reports people are used to.
const (
	ActiveColor     = "#0052cc"
	InactiveColor   = "#EF553B"
	WeeklyHourColor = "#00CC96"
	GlobalHourColor = "#AB63FA"
)

// LegionHealthBar builds the stacked Active/Inactive bar per legion for one
// week's summary. The TOTAL row is skipped; it would dwarf the real bars.
func LegionHealthBar(rows []legion.SummaryRow, title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	var legions []string
	var active, inactive []opts.BarData
	for _, r := range rows {
		if r.Legion == legion.TotalLegion {
			continue
		}
		legions = append(legions, r.Legion)
		active = append(active, opts.BarData{Value: r.Active})
		inactive = append(inactive, opts.BarData{Value: r.Inactive})
	}

	bar.SetXAxis(legions).
		AddSeries("Active", active,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: ActiveColor}),
			charts.WithBarChartOpts(opts.BarChart{Stack: "status"}),
		).
		AddSeries("Inactive", inactive,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: InactiveColor}),
			charts.WithBarChartOpts(opts.BarChart{Stack: "status"}),
		)
	return bar
}

// HourlyBar builds the active-participations-by-hour bar for any scope.
func HourlyBar(counts []legion.HourCount, title, color string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	hours := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		hours = append(hours, c.Hour)
		data = append(data, opts.BarData{Value: c.ActivePlayers})
	}

	bar.SetXAxis(hours).AddSeries("Active_Players", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

// RenderPage writes the given charts as one HTML page.
func RenderPage(w io.Writer, pageTitle string, cs ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = pageTitle
	page.AddCharts(cs...)
	return page.Render(w)
}
