// Package render draws 2D hull boundaries and Delaunay complexes as
// go-echarts scatter charts with edge overlays, for quick visual
// inspection of computed structures in a browser.
//
// Only planar (2D) structures can be charted; higher-dimensional input
// yields ErrNotPlanar. Rendering is HTML via chart.Render(w).
package render
