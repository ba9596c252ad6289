package record

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"forest-ca/pkg/forest"
)

// WriteChart renders the grass, tree and flame populations over time as a
// PNG. series must hold at least two points.
func WriteChart(w io.Writer, series []forest.Counts) error {
	if len(series) < 2 {
		return fmt.Errorf("record: chart needs at least two ticks, got %d", len(series))
	}
	xs := make([]float64, len(series))
	grass := make([]float64, len(series))
	trees := make([]float64, len(series))
	flames := make([]float64, len(series))
	for i, c := range series {
		xs[i] = float64(i)
		grass[i] = float64(c.Grass)
		trees[i] = float64(c.Trees)
		flames[i] = float64(c.Flames)
	}
	total := max(series[0].Total, 1)

	graph := chart.Chart{
		Width:  960,
		Height: 480,
		XAxis: chart.XAxis{
			Name: "tick",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(total)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Grass",
				XValues: xs,
				YValues: grass,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 25, G: 200, B: 80, A: 255}, StrokeWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Trees",
				XValues: xs,
				YValues: trees,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 80, G: 150, B: 80, A: 255}, StrokeWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Flames",
				XValues: xs,
				YValues: flames,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 200, G: 50, B: 50, A: 255}, StrokeWidth: 3},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}
