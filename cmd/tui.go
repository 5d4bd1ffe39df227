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

package cmd

import (
	"context"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"

	"github.com/termplot/termplot/debug"
	"github.com/termplot/termplot/plot"
	"github.com/termplot/termplot/term"
)

// runTUI drives the interactive chart: the chart pane flexes, a legend
// docks on the left, and a one-line status bar docks on the bottom.  Runs
// until q, Q, Escape, or Ctrl-C.
func runTUI(series []plot.Series, viewports *plot.ViewportManager, chartType plot.ChartType, mode plot.RenderMode, scale plot.RangeScale, grid, timeAxis bool) error {
	logger := debug.NewDebugLogger("tui.log")
	defer debug.Teardown()

	chart := &term.ChartView{
		Series:    series,
		Viewports: viewports,
		Type:      chartType,
		Mode:      mode,
		Scale:     scale,
		ShowGrid:  grid,
		TimeAxis:  timeAxis,
	}
	legend := &term.Legend{Chart: chart}
	statusBar := &term.StatusBar{Chart: chart}

	legendSize := 1
	for _, s := range series {
		name := s.Name
		if name == "" {
			name = s.ID
		}
		if w := runewidth.StringWidth(name) + 2; w > legendSize {
			w = min(w, maxLegendCols)
			legendSize = w
		}
	}

	mainView := &term.SplitView{
		Dock:     term.PosBelow,
		DockSize: 1,
		Docked:   statusBar,
		Flexed: &term.SplitView{
			Dock:     term.PosLeft,
			DockSize: legendSize,
			Docked:   legend,
			Flexed:   chart,
		},
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	runner := &term.Runner{}
	runner.KeyHandler = func(evt *tcell.EventKey) {
		switch {
		case evt.Key() == tcell.KeyEscape || evt.Key() == tcell.KeyCtrlC:
			stop()
		case evt.Key() == tcell.KeyRune && (evt.Rune() == 'q' || evt.Rune() == 'Q'):
			stop()
		default:
			chart.HandleKey(evt)
		}
	}
	runner.MouseHandler = chart.HandleMouse
	chart.OnChange = func() {
		logger.Printf("viewport now %+v", viewports.Viewport())
		runner.RequestRepaint()
	}

	return runner.Run(ctx, mainView)
}

const maxLegendCols = 24

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
