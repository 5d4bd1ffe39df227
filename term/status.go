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

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"

	"github.com/termplot/termplot/plot"
)

func modeName(mode plot.RenderMode) string {
	switch mode {
	case plot.ModeHalfBlock:
		return "half-block"
	case plot.ModeASCII:
		return "ascii"
	default:
		return "braille"
	}
}

// StatusBar is a one-line readout of a chart's viewport and render state.
type StatusBar struct {
	pos   PositionBox
	Chart *ChartView
}

func (s *StatusBar) SetBox(box PositionBox) {
	s.pos = box
}

func (s *StatusBar) FlushTo(screen tcell.Screen) {
	if s.Chart == nil || s.Chart.Viewports == nil || s.pos.Rows < 1 {
		return
	}
	vp := s.Chart.Viewports.Viewport()
	line := fmt.Sprintf(" x [%.4g, %.4g]  y [%.4g, %.4g]  zoom %.2fx  %s",
		vp.MinX, vp.MaxX, vp.MinY, vp.MaxY, vp.Zoom, modeName(s.Chart.Mode))
	writeLine(screen, s.pos, line, tcell.StyleDefault.Reverse(true))
}

// Legend lists series names, each in its series color.
type Legend struct {
	pos   PositionBox
	Chart *ChartView
}

func (l *Legend) SetBox(box PositionBox) {
	l.pos = box
}

func (l *Legend) FlushTo(screen tcell.Screen) {
	if l.Chart == nil {
		return
	}
	for i, series := range l.Chart.Series {
		if i >= l.pos.Rows {
			break
		}
		color := series.Color
		if color == plot.NoColor {
			color = plot.PaletteColor(i)
		}
		sty := tcell.StyleDefault.Foreground(tcell.GetColor(string(color)))
		name := series.Name
		if name == "" {
			name = series.ID
		}
		row := PositionBox{
			StartCol: l.pos.StartCol,
			StartRow: l.pos.StartRow + i,
			Cols:     l.pos.Cols,
			Rows:     1,
		}
		writeLine(screen, row, "▐ "+name, sty)
	}
}

// writeLine paints text on the box's first row, truncating to its width
// and padding the remainder with styled blanks.
func writeLine(screen tcell.Screen, box PositionBox, text string, sty tcell.Style) {
	text = runewidth.Truncate(text, box.Cols, "…")
	col := box.StartCol
	for _, rn := range text {
		screen.SetContent(col, box.StartRow, rn, nil, sty)
		col += runewidth.RuneWidth(rn)
	}
	for ; col < box.StartCol+box.Cols; col++ {
		screen.SetContent(col, box.StartRow, ' ', nil, sty)
	}
}
