package render

import (
	"errors"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/latvex/convexity"
	"github.com/katalvlaran/latvex/lattice"
)

// ErrNotPlanar indicates a structure with ambient dimension other than 2.
var ErrNotPlanar = errors.New("render: only 2D structures can be charted")

// edge is an undirected vertex-index pair.
type edge [2]int

// DelaunayChart charts a 2D Delaunay complex: one scatter point per
// vertex, one line overlay per distinct cell edge.
func DelaunayChart(cc *convexity.ConvexCellComplex, title string) (*charts.Scatter, error) {
	positions := make([]lattice.RealPoint, len(cc.Vertices))
	for i, v := range cc.Vertices {
		if v.Dim() != 2 {
			return nil, ErrNotPlanar
		}
		positions[i] = v.Real()
	}
	return chart(positions, cycleEdges(cc.Cells), title), nil
}

// BoundaryChart charts a 2D hull boundary: one scatter point per vertex,
// one line overlay per boundary edge.
func BoundaryChart(s *convexity.PolygonalSurface, title string) (*charts.Scatter, error) {
	for _, p := range s.Positions {
		if len(p) != 2 {
			return nil, ErrNotPlanar
		}
	}
	// 2D boundary faces are already edges: two vertices each.
	return chart(s.Positions, cycleEdges(s.Faces), title), nil
}

// cycleEdges collects the distinct undirected edges of the face cycles.
func cycleEdges(faces []convexity.IndexRange) []edge {
	seen := make(map[edge]struct{})
	var out []edge
	for _, f := range faces {
		if len(f) < 2 {
			continue
		}
		n := len(f)
		if n == 2 {
			n = 1 // a two-vertex face is a single edge, not a 2-cycle
		}
		for i := 0; i < n; i++ {
			a, b := f[i], f[(i+1)%len(f)]
			if a > b {
				a, b = b, a
			}
			e := edge{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// chart assembles the scatter-with-overlays chart.
func chart(positions []lattice.RealPoint, edges []edge, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	points := make([]opts.ScatterData, len(positions))
	for i, p := range positions {
		points[i] = opts.ScatterData{Value: []float64{p[0], p[1]}}
	}
	scatter.AddSeries("vertices", points).
		SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: "lightgreen"}))

	for _, e := range edges {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)
		line.AddSeries("edges", []opts.LineData{
			{Value: []float64{positions[e[0]][0], positions[e[0]][1]}},
			{Value: []float64{positions[e[1]][0], positions[e[1]][1]}},
		}).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
		scatter.Overlap(line)
	}
	return scatter
}
