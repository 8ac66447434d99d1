// Package visual builds the floating PnL bar chart with go-echarts.
package visual

import (
	"io"

	"okxpos/internal/presenter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	ChartTitle = "Floating PnL Graph"
	SeriesName = "PnL"
	AxisName   = "PnL (USD)"

	colorGain = "#21ba45"
	colorLoss = "#c10015"
)

// NewPnLBar returns a bar chart with one bar per position, green for gains
// and red for losses, in series order.
func NewPnLBar(series presenter.PnLSeries) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: ChartTitle,
			Theme:     types.ThemeWesteros,
			Width:     "100%",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{Title: ChartTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: AxisName}),
	)
	labels := series.Labels
	if labels == nil {
		labels = []string{}
	}
	bar.SetXAxis(labels)
	bar.AddSeries(SeriesName, barData(series.Values))
	return bar
}

func barData(values []float64) []opts.BarData {
	out := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		color := colorGain
		if v <= 0 {
			color = colorLoss
		}
		out = append(out, opts.BarData{
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: color},
		})
	}
	return out
}

// Options returns the echarts option object for setOption in the browser.
func Options(series presenter.PnLSeries) map[string]any {
	bar := NewPnLBar(series)
	bar.Validate()
	return bar.JSON()
}

// Render writes a standalone HTML page containing the chart.
func Render(w io.Writer, series presenter.PnLSeries) error {
	return NewPnLBar(series).Render(w)
}
