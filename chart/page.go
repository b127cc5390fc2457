package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Page 网页折线图
type Page struct {
	Title   string
	Figures []Figure
}

// line 构建单幅折线图
func (f Figure) line() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:   types.ThemeWesteros,
			ChartID: f.ID,
			Width:   "640px",
			Height:  "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    f.Title,
			Subtitle: f.Subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Type: "scroll",
			Top:  "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      f.XLabel,
			Type:      "value",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      f.YLabel,
			Type:      "value",
			Scale:     opts.Bool(true),
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
	)
	for _, s := range f.Series {
		items := make([]opts.LineData, len(s.X))
		for i := range s.X {
			items[i].Value = []any{s.X[i], s.Y[i]}
		}
		line.AddSeries(s.Name, items,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}
	return line
}

// Render 输出完整的 HTML 页面
func (p *Page) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = p.Title
	for _, f := range p.Figures {
		page.AddCharts(f.line())
	}
	return page.Render(w)
}
