package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth       = "900px"
	chartHeight      = "500px"
	dataZoomEnd      = 100
	xAxisLabelRotate = 30
	labelFontSize    = 10
)

// SeriesData represents a single numeric value in a chart series.
// Both int and float64 values are accepted.
type SeriesData any

// BarSeries defines the properties and data for a single bar chart series.
type BarSeries struct {
	Name  string
	Data  []SeriesData
	Color string // Optional, uses the default palette if empty.
}

// barGlobalOptions configures size, titles, axis interaction and legend for
// a grade bar chart. X labels rotate so long student names stay readable.
func barGlobalOptions(title, subtitle, yAxisLabel string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "slider", Start: 0, End: dataZoomEnd},
			opts.DataZoom{Type: "inside"},
		),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate:   xAxisLabelRotate,
				Interval: "0",
				FontSize: labelFontSize,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisLabel}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll"}),
	}
}

// BuildBarChart constructs a configured go-echarts bar chart with one bar
// group per label and one colored series per BarSeries.
func BuildBarChart(title, subtitle string, labels []string, series []BarSeries, yAxisLabel string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(barGlobalOptions(title, subtitle, yAxisLabel)...)
	bar.SetXAxis(labels)

	for _, s := range series {
		points := make([]opts.BarData, len(s.Data))
		for i, v := range s.Data {
			points[i] = opts.BarData{Value: v}
		}

		var style []charts.SeriesOpts
		if s.Color != "" {
			style = append(style, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}

		bar.AddSeries(s.Name, points, style...)
	}

	return bar
}
