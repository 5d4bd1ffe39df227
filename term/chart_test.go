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

package term_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/gdamore/tcell"

	"github.com/termplot/termplot/plot"
	"github.com/termplot/termplot/term"
)

func float64Ptr(v float64) *float64 { return &v }

// tenByTenViewports pins the viewport to exactly [0, 10] on both axes so
// the expected screens below don't depend on automatic bounds padding.
func tenByTenViewports() *plot.ViewportManager {
	return plot.NewViewportManager(nil, plot.Config{
		Overrides: plot.AxisOverrides{
			MinX: float64Ptr(0), MaxX: float64Ptr(10),
			MinY: float64Ptr(0), MaxY: float64Ptr(10),
		},
	})
}

func diagonalChart() *term.ChartView {
	return &term.ChartView{
		Series: []plot.Series{{
			ID:     "diag",
			Name:   "diag",
			Points: []plot.Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
		}},
		Viewports: tenByTenViewports(),
		Mode:      plot.ModeASCII,
	}
}

// flushToSim renders the chart once on a fake screen so that it captures
// its inner chart area, which mouse handling needs.
func flushToSim(chart *term.ChartView, cols, rows int) {
	screen := tcell.NewSimulationScreen("")
	screen.Init()
	screen.SetSize(cols, rows)
	chart.SetBox(term.PositionBox{Cols: cols, Rows: rows})
	chart.FlushTo(screen)
}

func keyRune(rn rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, rn, tcell.ModNone)
}

var _ = Describe("The chart widget", func() {
	Context("when dealing with size & content corner cases", func() {
		It("should skip rendering if given zero columns", func() {
			gr := diagonalChart()
			gr.SetBox(term.PositionBox{Rows: 10, Cols: 0})
			Expect(gr).To(DisplayLike(1, 10, ""))
		})

		It("should skip rendering if given zero rows", func() {
			gr := diagonalChart()
			gr.SetBox(term.PositionBox{Rows: 0, Cols: 100})
			Expect(gr).To(DisplayLike(1, 10, ""))
		})

		It("should skip rendering without a viewport manager", func() {
			gr := &term.ChartView{}
			gr.SetBox(term.PositionBox{Rows: 10, Cols: 10})
			Expect(gr).To(DisplayLike(10, 10, ""))
		})
	})

	It("should render axes, tick labels, and the plotted series", func() {
		gr := diagonalChart()
		gr.SetBox(term.PositionBox{Rows: 10, Cols: 13})

		Expect(gr).To(DisplayLike(13, 10,
			"10┨         *"+
				"  ┃        * "+
				"  ┃      **  "+
				"  ┃     *    "+
				"  ┃    *     "+
				"  ┃  **      "+
				"  ┃ *        "+
				" 0┨*         "+
				"  ┗┯━━━━━━━━┯"+
				"   0        1"))
	})

	It("should use the provided tick labelers to label the axes", func() {
		gr := diagonalChart()
		gr.XLabeler = func(x float64) string { return "X" }
		gr.YLabeler = func(y float64) string { return "Y" }
		gr.SetBox(term.PositionBox{Rows: 10, Cols: 12})

		Expect(gr).To(DisplayLike(12, 10,
			"Y┨         *"+
				" ┃        * "+
				" ┃      **  "+
				" ┃     *    "+
				" ┃    *     "+
				" ┃  **      "+
				" ┃ *        "+
				"Y┨*         "+
				" ┗┯━━━━━━━━┯"+
				"  X        X"))
	})

	Context("when handling keys", func() {
		var gr *term.ChartView
		BeforeEach(func() {
			gr = diagonalChart()
			flushToSim(gr, 13, 10)
		})

		It("should pan by a fraction of the visible range", func() {
			gr.HandleKey(keyRune('l'))
			vp := gr.Viewports.Viewport()
			Expect(vp.MinX).To(BeNumerically("~", 0.5, 1e-9))
			Expect(vp.MaxX).To(BeNumerically("~", 10.5, 1e-9))
			Expect(vp.MinY).To(BeNumerically("~", 0, 1e-9))
		})

		It("should treat the arrow keys like hjkl", func() {
			gr.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
			vp := gr.Viewports.Viewport()
			Expect(vp.MinY).To(BeNumerically("~", 0.5, 1e-9))
			Expect(vp.MaxY).To(BeNumerically("~", 10.5, 1e-9))
		})

		It("should zoom about the viewport center on +", func() {
			gr.HandleKey(keyRune('+'))
			vp := gr.Viewports.Viewport()
			Expect(vp.MinX).To(BeNumerically("~", 1, 1e-9))
			Expect(vp.MaxX).To(BeNumerically("~", 9, 1e-9))
			Expect(vp.MinY).To(BeNumerically("~", 1, 1e-9))
			Expect(vp.MaxY).To(BeNumerically("~", 9, 1e-9))
		})

		It("should restore the initial viewport on r", func() {
			gr.HandleKey(keyRune('l'))
			gr.HandleKey(keyRune('+'))
			gr.HandleKey(keyRune('r'))
			vp := gr.Viewports.Viewport()
			Expect(vp.MinX).To(BeNumerically("~", 0, 1e-9))
			Expect(vp.MaxX).To(BeNumerically("~", 10, 1e-9))
		})

		It("should cycle through the render modes on m", func() {
			gr.Mode = plot.ModeBraille
			gr.HandleKey(keyRune('m'))
			Expect(gr.Mode).To(Equal(plot.ModeHalfBlock))
			gr.HandleKey(keyRune('m'))
			Expect(gr.Mode).To(Equal(plot.ModeASCII))
			gr.HandleKey(keyRune('m'))
			Expect(gr.Mode).To(Equal(plot.ModeBraille))
		})

		It("should toggle the grid on g", func() {
			Expect(gr.ShowGrid).To(BeFalse())
			gr.HandleKey(keyRune('g'))
			Expect(gr.ShowGrid).To(BeTrue())
			gr.HandleKey(keyRune('g'))
			Expect(gr.ShowGrid).To(BeFalse())
		})

		It("should notify the host of view changes", func() {
			changed := 0
			gr.OnChange = func() { changed++ }
			gr.HandleKey(keyRune('l'))
			gr.HandleKey(keyRune('x'))
			Expect(changed).To(Equal(1), "unbound keys should not notify")
		})
	})

	Context("when handling the mouse", func() {
		var gr *term.ChartView
		BeforeEach(func() {
			gr = diagonalChart()
			// chart area ends up as cols 3-12, rows 0-7
			flushToSim(gr, 13, 10)
		})

		It("should zoom anchored at the cursor's data position", func() {
			// bottom-left of the chart area, i.e. data (0, 0)
			gr.HandleMouse(tcell.NewEventMouse(3, 7, tcell.WheelUp, tcell.ModNone))
			vp := gr.Viewports.Viewport()
			Expect(vp.MinX).To(BeNumerically("~", 0, 1e-9))
			Expect(vp.MaxX).To(BeNumerically("~", 8, 1e-9))
			Expect(vp.MinY).To(BeNumerically("~", 0, 1e-9))
			Expect(vp.MaxY).To(BeNumerically("~", 8, 1e-9))
		})

		It("should pan while dragging with the primary button", func() {
			gr.HandleMouse(tcell.NewEventMouse(7, 3, tcell.Button1, tcell.ModNone))
			gr.HandleMouse(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
			vp := gr.Viewports.Viewport()
			Expect(vp.MinX).To(BeNumerically("~", 2, 1e-9))
			Expect(vp.MaxX).To(BeNumerically("~", 12, 1e-9))
		})

		It("should ignore events outside the chart area", func() {
			gr.HandleMouse(tcell.NewEventMouse(0, 9, tcell.WheelUp, tcell.ModNone))
			vp := gr.Viewports.Viewport()
			Expect(vp.MinX).To(BeNumerically("~", 0, 1e-9))
			Expect(vp.MaxX).To(BeNumerically("~", 10, 1e-9))
		})
	})
})

var _ = Describe("The status bar widget", func() {
	It("should summarize the viewport and render state on one line", func() {
		bar := &term.StatusBar{Chart: diagonalChart()}
		bar.SetBox(term.PositionBox{Cols: 46, Rows: 1})

		Expect(bar).To(DisplayLike(46, 1,
			" x [0, 10]  y [0, 10]  zoom 1.00x  ascii"))
	})

	It("should truncate to its width", func() {
		bar := &term.StatusBar{Chart: diagonalChart()}
		bar.SetBox(term.PositionBox{Cols: 8, Rows: 1})

		Expect(bar).To(DisplayLike(8, 1, " x [0, …"))
	})
})

var _ = Describe("The legend widget", func() {
	It("should list one series name per row", func() {
		chart := &term.ChartView{
			Series: []plot.Series{
				{ID: "a", Name: "a", Color: plot.Color("#ff0000")},
				{ID: "b", Name: "b", Color: plot.Color("#0000ff")},
			},
		}
		legend := &term.Legend{Chart: chart}
		legend.SetBox(term.PositionBox{Cols: 4, Rows: 3})

		Expect(legend).To(DisplayLike(4, 3,
			"▐ a "+
				"▐ b "))
	})

	It("should fall back to the series ID when the name is empty", func() {
		chart := &term.ChartView{
			Series: []plot.Series{{ID: "cpu"}},
		}
		legend := &term.Legend{Chart: chart}
		legend.SetBox(term.PositionBox{Cols: 5, Rows: 1})

		Expect(legend).To(DisplayLike(5, 1, "▐ cpu"))
	})
})
