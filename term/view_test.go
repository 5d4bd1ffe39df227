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

	"github.com/termplot/termplot/term"
)

type flushRecorder struct {
	term.StaticResizable
	flushed bool
}

func (r *flushRecorder) FlushTo(screen tcell.Screen) {
	r.flushed = true
}

var _ = Describe("PositionBox", func() {
	box := term.PositionBox{StartCol: 2, StartRow: 3, Cols: 4, Rows: 5}

	It("should contain positions inside its extent", func() {
		Expect(box.Contains(2, 3)).To(BeTrue(), "top-left corner is inside")
		Expect(box.Contains(5, 7)).To(BeTrue(), "bottom-right cell is inside")
	})

	It("should exclude positions on or past its far edges", func() {
		Expect(box.Contains(6, 3)).To(BeFalse(), "one past the right edge")
		Expect(box.Contains(2, 8)).To(BeFalse(), "one past the bottom edge")
		Expect(box.Contains(1, 3)).To(BeFalse(), "left of the box")
		Expect(box.Contains(2, 2)).To(BeFalse(), "above the box")
	})
})

var _ = Describe("StaticResizable", func() {
	It("should record the size it was sent", func() {
		resizable := &term.StaticResizable{}
		targetBox := term.PositionBox{
			StartRow: 1,
			StartCol: 2,
			Rows:     3,
			Cols:     4,
		}
		resizable.SetBox(targetBox)
		Expect(resizable.PositionBox).To(Equal(targetBox), "recorded box should equal the passed in one")
	})
})

var _ = Describe("SplitView", func() {
	var (
		view       term.SplitView
		dockedView term.StaticResizable
		flexedView term.StaticResizable
	)
	BeforeEach(func() {
		dockedView = term.StaticResizable{}
		flexedView = term.StaticResizable{}
		view = term.SplitView{
			Docked: &dockedView,
			Flexed: &flexedView,
		}
	})

	Context("when positioning the docked content", func() {
		BeforeEach(func() {
			view.DockSize = 10
		})

		It("should support placing a full-width pane on the bottom", func() {
			view.Dock = term.PosBelow
			view.SetBox(term.PositionBox{
				StartRow: 10, StartCol: 20,
				Rows: 100, Cols: 200,
			})

			Expect(dockedView.PositionBox).To(Equal(term.PositionBox{
				// full width
				StartCol: 20, Cols: 200,

				// bottom 10 rows
				StartRow: 100, Rows: 10,
			}))
		})

		It("should support placing a full-width pane at the top", func() {
			view.Dock = term.PosAbove
			view.SetBox(term.PositionBox{
				StartRow: 10, StartCol: 20,
				Rows: 100, Cols: 200,
			})

			Expect(dockedView.PositionBox).To(Equal(term.PositionBox{
				// full width
				StartCol: 20, Cols: 200,

				// top 10 rows
				StartRow: 10, Rows: 10,
			}))
		})

		It("should support placing a full-height pane on the left", func() {
			view.Dock = term.PosLeft
			view.SetBox(term.PositionBox{
				StartRow: 10, StartCol: 20,
				Rows: 100, Cols: 200,
			})

			Expect(dockedView.PositionBox).To(Equal(term.PositionBox{
				// full height
				StartRow: 10, Rows: 100,

				// left 10 cols
				StartCol: 20, Cols: 10,
			}))
		})

		It("should support placing a full-height pane on the right", func() {
			view.Dock = term.PosRight
			view.SetBox(term.PositionBox{
				StartRow: 10, StartCol: 20,
				Rows: 100, Cols: 200,
			})

			Expect(dockedView.PositionBox).To(Equal(term.PositionBox{
				// full height
				StartRow: 10, Rows: 100,

				// right 10 cols
				StartCol: 210, Cols: 10,
			}))
		})

		It("should cap the dock size to leave the flexed pane one row", func() {
			view.Dock = term.PosBelow
			view.DockSize = 50
			view.SetBox(term.PositionBox{Rows: 20, Cols: 80})

			Expect(dockedView.Rows).To(Equal(19))
			Expect(flexedView.Rows).To(Equal(1))
		})
	})

	Context("when positioning the flexed content", func() {
		BeforeEach(func() {
			view.DockSize = 10
		})

		It("should give the flexed pane the remaining rows", func() {
			view.Dock = term.PosBelow
			view.SetBox(term.PositionBox{
				StartRow: 10, StartCol: 20,
				Rows: 100, Cols: 200,
			})

			Expect(flexedView.PositionBox).To(Equal(term.PositionBox{
				StartCol: 20, Cols: 200,
				StartRow: 10, Rows: 90,
			}))
		})

		It("should offset the flexed pane past a top dock", func() {
			view.Dock = term.PosAbove
			view.SetBox(term.PositionBox{
				StartRow: 10, StartCol: 20,
				Rows: 100, Cols: 200,
			})

			Expect(flexedView.PositionBox).To(Equal(term.PositionBox{
				StartCol: 20, Cols: 200,
				StartRow: 20, Rows: 90,
			}))
		})

		It("should offset the flexed pane past a left dock", func() {
			view.Dock = term.PosLeft
			view.SetBox(term.PositionBox{
				StartRow: 10, StartCol: 20,
				Rows: 100, Cols: 200,
			})

			Expect(flexedView.PositionBox).To(Equal(term.PositionBox{
				StartRow: 10, Rows: 100,
				StartCol: 30, Cols: 190,
			}))
		})
	})

	It("should flush both panes when they're flushable", func() {
		docked := &flushRecorder{}
		flexed := &flushRecorder{}
		split := term.SplitView{Docked: docked, Flexed: flexed}
		split.FlushTo(nil)

		Expect(docked.flushed).To(BeTrue())
		Expect(flexed.flushed).To(BeTrue())
	})
})
