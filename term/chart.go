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

package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"

	"github.com/termplot/termplot/plot"
)

const (
	// pan distance per keypress, as a fraction of the axis range
	panStep = 0.05

	zoomInFactor  = 1.25
	zoomOutFactor = 1 / zoomInFactor

	// bottom margin: one row for the axis line, one for the labels
	xAxisRows = 2
)

// axis glyphs, matching the usual box-drawing axis look
const (
	yAxisGlyph  = '┃'
	xAxisGlyph  = '━'
	yTickGlyph  = '┨'
	xTickGlyph  = '┯'
	cornerGlyph = '┗'
)

// NumberLabeler formats plain numeric tick values.
func NumberLabeler(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

// TimeLabeler formats epoch-millisecond tick values as wall-clock times.
func TimeLabeler(v float64) string {
	return time.UnixMilli(int64(v)).UTC().Format("15:04")
}

// ChartView is an interactive chart widget.  It owns the viewport for its
// series, renders them through the plot core on every flush, and translates
// key and mouse events into viewport operations.  Hosts deliver input from
// a single goroutine and trigger a repaint via OnChange.
type ChartView struct {
	pos PositionBox
	// inner is the chart area (pos minus axis margins) in absolute screen
	// coordinates, captured at flush time for mouse mapping
	inner PositionBox

	Series    []plot.Series
	Viewports *plot.ViewportManager

	Mode     plot.RenderMode
	Type     plot.ChartType
	Scale    plot.RangeScale
	ShowGrid bool

	// TimeAxis switches the X axis to the time-interval tick ladder.
	TimeAxis bool

	// XLabeler and YLabeler format tick values; nil picks NumberLabeler
	// (or TimeLabeler for a time axis).
	XLabeler func(float64) string
	YLabeler func(float64) string

	// OnChange is called whenever input mutates view state, so the host
	// can request a repaint.
	OnChange func()

	crosshair *plot.Crosshair

	dragging         bool
	dragCol, dragRow int
}

func (g *ChartView) SetBox(box PositionBox) {
	g.pos = box
}

func (g *ChartView) xLabeler() func(float64) string {
	if g.XLabeler != nil {
		return g.XLabeler
	}
	if g.TimeAxis {
		return TimeLabeler
	}
	return NumberLabeler
}

func (g *ChartView) yLabeler() func(float64) string {
	if g.YLabeler != nil {
		return g.YLabeler
	}
	return NumberLabeler
}

func (g *ChartView) xTicks(vp plot.Viewport, count int) []float64 {
	if g.TimeAxis {
		return plot.TimeTicks(vp.MinX, vp.MaxX, count)
	}
	return plot.Ticks(vp.MinX, vp.MaxX, count)
}

func tickCount(cells, spacing int) int {
	count := cells / spacing
	if count < 2 {
		count = 2
	}
	return count
}

func (g *ChartView) FlushTo(screen tcell.Screen) {
	if g.Viewports == nil || g.pos.Cols <= 0 || g.pos.Rows <= 0 {
		return
	}

	vp := g.Viewports.Viewport()

	yTicks := plot.Ticks(vp.MinY, vp.MaxY, tickCount(g.pos.Rows, 4))
	xTicks := g.xTicks(vp, tickCount(g.pos.Cols, 12))

	yLabeler := g.yLabeler()
	xLabeler := g.xLabeler()

	// the Y margin has to fit the widest label plus the axis line
	marginCols := 0
	yLabels := make([]string, len(yTicks))
	for i, tick := range yTicks {
		yLabels[i] = yLabeler(tick)
		if w := runewidth.StringWidth(yLabels[i]); w > marginCols {
			marginCols = w
		}
	}
	marginCols++

	innerCols := g.pos.Cols - marginCols
	innerRows := g.pos.Rows - xAxisRows
	if innerCols <= 0 || innerRows <= 0 {
		// too small to render, just bail
		return
	}
	g.inner = PositionBox{
		StartCol: g.pos.StartCol + marginCols,
		StartRow: g.pos.StartRow,
		Cols:     innerCols,
		Rows:     innerRows,
	}

	g.drawAxes(screen, vp, yTicks, yLabels, xTicks, xLabeler, marginCols, innerCols, innerRows)

	buf := plot.Render(g.Series, vp, innerCols, innerRows, plot.Options{
		Type:      g.Type,
		Mode:      g.Mode,
		Scale:     g.Scale,
		ShowGrid:  g.ShowGrid,
		Crosshair: g.crosshair,
	})

	for row := 0; row < buf.Rows; row++ {
		for col := 0; col < buf.Cols; col++ {
			ch, color := buf.At(col, row)
			sty := tcell.StyleDefault
			if color != plot.NoColor {
				sty = sty.Foreground(tcell.GetColor(string(color)))
			}
			screen.SetContent(g.inner.StartCol+col, g.inner.StartRow+row, ch, nil, sty)
		}
	}
}

func (g *ChartView) drawAxes(screen tcell.Screen, vp plot.Viewport, yTicks []float64, yLabels []string, xTicks []float64, xLabeler func(float64) string, marginCols, innerCols, innerRows int) {
	axisCol := g.pos.StartCol + marginCols - 1
	axisRow := g.pos.StartRow + innerRows

	for row := 0; row < innerRows; row++ {
		screen.SetContent(axisCol, g.pos.StartRow+row, yAxisGlyph, nil, tcell.StyleDefault)
	}
	for col := 0; col < innerCols; col++ {
		screen.SetContent(axisCol+1+col, axisRow, xAxisGlyph, nil, tcell.StyleDefault)
	}
	screen.SetContent(axisCol, axisRow, cornerGlyph, nil, tcell.StyleDefault)

	for i, tick := range yTicks {
		_, row := plot.DataToScreen(vp.MinX, tick, vp, innerCols, innerRows)
		if row < 0 || row >= innerRows {
			continue
		}
		screen.SetContent(axisCol, g.pos.StartRow+row, yTickGlyph, nil, tcell.StyleDefault)

		// label, right-justified against the axis
		lblCol := axisCol - runewidth.StringWidth(yLabels[i])
		for _, rn := range yLabels[i] {
			if lblCol >= g.pos.StartCol {
				screen.SetContent(lblCol, g.pos.StartRow+row, rn, nil, tcell.StyleDefault)
			}
			lblCol += runewidth.RuneWidth(rn)
		}
	}

	for _, tick := range xTicks {
		col, _ := plot.DataToScreen(tick, vp.MinY, vp, innerCols, innerRows)
		if col < 0 || col >= innerCols {
			continue
		}
		screen.SetContent(axisCol+1+col, axisRow, xTickGlyph, nil, tcell.StyleDefault)

		lblCol := axisCol + 1 + col
		for _, rn := range xLabeler(tick) {
			if lblCol < g.pos.StartCol+g.pos.Cols {
				screen.SetContent(lblCol, axisRow+1, rn, nil, tcell.StyleDefault)
			}
			lblCol += runewidth.RuneWidth(rn)
		}
	}
}

func (g *ChartView) notifyChange() {
	if g.OnChange != nil {
		g.OnChange()
	}
}

// HandleKey translates chart keybindings into viewport operations:
// h/j/k/l and the arrows pan, +/- zoom about the center, r resets, f fits
// to the current data, c toggles the crosshair, g toggles the grid, and m
// cycles the render mode.
func (g *ChartView) HandleKey(evt *tcell.EventKey) {
	if g.Viewports == nil {
		return
	}

	switch evt.Key() {
	case tcell.KeyLeft:
		g.Viewports.Pan(-panStep, 0)
	case tcell.KeyRight:
		g.Viewports.Pan(panStep, 0)
	case tcell.KeyDown:
		g.Viewports.Pan(0, -panStep)
	case tcell.KeyUp:
		g.Viewports.Pan(0, panStep)
	case tcell.KeyRune:
		switch evt.Rune() {
		case 'h':
			g.Viewports.Pan(-panStep, 0)
		case 'l':
			g.Viewports.Pan(panStep, 0)
		case 'j':
			g.Viewports.Pan(0, -panStep)
		case 'k':
			g.Viewports.Pan(0, panStep)
		case '+', '=':
			g.Viewports.Zoom(zoomInFactor, nil)
		case '-':
			g.Viewports.Zoom(zoomOutFactor, nil)
		case 'r':
			g.Viewports.Reset()
		case 'f':
			g.Viewports.FitToData(g.Series)
		case 'c':
			g.toggleCrosshair()
		case 'g':
			g.ShowGrid = !g.ShowGrid
		case 'm':
			g.Mode = nextMode(g.Mode)
		default:
			return
		}
	default:
		return
	}
	g.notifyChange()
}

func nextMode(mode plot.RenderMode) plot.RenderMode {
	switch mode {
	case plot.ModeBraille:
		return plot.ModeHalfBlock
	case plot.ModeHalfBlock:
		return plot.ModeASCII
	default:
		return plot.ModeBraille
	}
}

func (g *ChartView) toggleCrosshair() {
	if g.crosshair != nil {
		g.crosshair = nil
		return
	}
	g.crosshair = &plot.Crosshair{Col: g.inner.Cols / 2, Row: g.inner.Rows / 2}
}

// HandleMouse translates mouse input inside the chart area: the wheel
// zooms anchored at the cursor's data position, dragging with the primary
// button pans, and plain motion moves the crosshair when it is shown.
func (g *ChartView) HandleMouse(evt *tcell.EventMouse) {
	if g.Viewports == nil || g.inner.Cols <= 0 || g.inner.Rows <= 0 {
		return
	}

	col, row := evt.Position()
	if !g.inner.Contains(col, row) {
		g.dragging = false
		return
	}
	bufCol := col - g.inner.StartCol
	bufRow := row - g.inner.StartRow

	changed := false
	vp := g.Viewports.Viewport()

	switch {
	case evt.Buttons()&tcell.WheelUp != 0:
		x, y := plot.ScreenToData(bufCol, bufRow, vp, g.inner.Cols, g.inner.Rows)
		g.Viewports.Zoom(zoomInFactor, &plot.Point{X: x, Y: y})
		changed = true
	case evt.Buttons()&tcell.WheelDown != 0:
		x, y := plot.ScreenToData(bufCol, bufRow, vp, g.inner.Cols, g.inner.Rows)
		g.Viewports.Zoom(zoomOutFactor, &plot.Point{X: x, Y: y})
		changed = true
	case evt.Buttons()&tcell.Button1 != 0:
		if g.dragging {
			dx := float64(g.dragCol-col) / float64(g.inner.Cols)
			// screen rows grow downward, data Y grows upward
			dy := float64(row-g.dragRow) / float64(g.inner.Rows)
			if dx != 0 || dy != 0 {
				g.Viewports.Pan(dx, dy)
				changed = true
			}
		}
		g.dragging = true
		g.dragCol, g.dragRow = col, row
	default:
		g.dragging = false
	}

	if g.crosshair != nil && (g.crosshair.Col != bufCol || g.crosshair.Row != bufRow) {
		g.crosshair.Col = bufCol
		g.crosshair.Row = bufRow
		changed = true
	}

	if changed {
		g.notifyChange()
	}
}
