/*
Copyright 2023 The termplot Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package plot

import (
	"math"
)

// Options configures a single render call.
type Options struct {
	// Type is the chart-level type; TypeDefault means TypeLine.  A series
	// with its own type override ignores it.
	Type ChartType
	Mode RenderMode

	// Scale remaps Y before projection; nil means linear.
	Scale RangeScale

	ShowGrid  bool
	Crosshair *Crosshair
}

// Render is the single per-frame entry point: each series is rendered
// against the viewport into its own buffer, the buffers are merged in slice
// order, and the grid and crosshair overlays are applied on top.  It
// recomputes everything from scratch on every call -- a full render is
// cheap enough to re-run per keystroke, and skipping cross-frame caching
// keeps the core stateless.
func Render(series []Series, vp Viewport, cols, rows int, opts Options) *CanvasBuffer {
	result := NewCanvasBuffer(cols, rows)
	if cols <= 0 || rows <= 0 {
		return result
	}

	scale := opts.Scale
	if scale == nil {
		scale = LinearScale
	}
	chartType := opts.Type
	if chartType == TypeDefault {
		chartType = TypeLine
	}

	for i, s := range series {
		color := s.Color
		if color == NoColor {
			color = PaletteColor(i)
		}

		seriesType := s.Type
		if seriesType == TypeDefault {
			seriesType = chartType
		}

		var buf *CanvasBuffer
		switch seriesType {
		case TypeBar:
			buf = renderBarSeries(s, i, len(series), vp, scale, cols, rows, opts.Mode, color)
		default:
			buf = renderLineSeries(s, vp, scale, cols, rows, opts.Mode, color)
		}
		result = MergeBuffers(result, buf)
	}

	if opts.ShowGrid {
		drawGrid(result, vp, opts.Mode)
	}
	if opts.Crosshair != nil {
		drawCrosshair(result, *opts.Crosshair, opts.Mode)
	}
	return result
}

// unitPosition maps a data point into a canvas's unit grid, applying the
// range scale to Y.  It is DataToScreen generalized to the oversampled
// resolution of the encoder in use.
func unitPosition(pt Point, vp Viewport, scale RangeScale, unitCols, unitRows int) (int, int) {
	spanX := float64(unitCols - 1)
	spanY := float64(unitRows - 1)
	if spanX < 1 {
		spanX = 1
	}
	if spanY < 1 {
		spanY = 1
	}

	yLo := scale(vp.MinY)
	yRange := scale(vp.MaxY) - yLo
	if yRange == 0 {
		yRange = 1
	}

	x := math.Round((pt.X - vp.MinX) / vp.XRange() * spanX)
	y := math.Round((1 - (scale(pt.Y)-yLo)/yRange) * spanY)
	return int(x), int(y)
}

// renderLineSeries rasterizes a segment between each pair of consecutive
// points on an oversampled canvas; a lone point becomes a single unit.
func renderLineSeries(s Series, vp Viewport, scale RangeScale, cols, rows int, mode RenderMode, color Color) *CanvasBuffer {
	canvas := NewCanvas(mode, cols, rows)
	if len(s.Points) == 0 {
		return canvas.Buffer()
	}

	prevX, prevY := unitPosition(s.Points[0], vp, scale, canvas.UnitCols(), canvas.UnitRows())
	canvas.SetUnit(prevX, prevY, color)

	for _, pt := range s.Points[1:] {
		x, y := unitPosition(pt, vp, scale, canvas.UnitCols(), canvas.UnitRows())
		DrawSegment(prevX, prevY, x, y, func(ux, uy int) {
			canvas.SetUnit(ux, uy, color)
		})
		prevX, prevY = x, y
	}
	return canvas.Buffer()
}

// renderBarSeries splits the chart width into one group per data index and
// sub-divides each group by the series count, so sibling series sit next to
// each other instead of overlapping.  Bar height is proportional to the
// point's position within the viewport Y range, filled from the computed
// top row down to the bottom.  The bar width floors at one cell, which can
// reintroduce overlap when the series count outgrows the chart width.
func renderBarSeries(s Series, seriesIndex, totalSeries int, vp Viewport, scale RangeScale, cols, rows int, mode RenderMode, color Color) *CanvasBuffer {
	buf := NewCanvasBuffer(cols, rows)
	if len(s.Points) == 0 || totalSeries <= 0 {
		return buf
	}

	glyph := rune(fullBlock)
	if mode == ModeASCII {
		glyph = '#'
	}

	yLo := scale(vp.MinY)
	yRange := scale(vp.MaxY) - yLo
	if yRange == 0 {
		yRange = 1
	}

	groupWidth := float64(cols) / float64(len(s.Points))
	barWidth := int(groupWidth) / totalSeries
	if barWidth < 1 {
		barWidth = 1
	}

	for i, pt := range s.Points {
		frac := (scale(pt.Y) - yLo) / yRange
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		barHeight := int(math.Round(frac * float64(rows)))

		startCol := int(float64(i)*groupWidth) + seriesIndex*barWidth
		for col := startCol; col < startCol+barWidth; col++ {
			for row := rows - barHeight; row < rows; row++ {
				buf.Set(col, row, glyph, color)
			}
		}
	}
	return buf
}
