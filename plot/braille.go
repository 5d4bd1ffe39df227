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

const (
	brailleCellWidth     = 2
	brailleCellHeight    = 4
	brailleCellPositions = brailleCellWidth * brailleCellHeight

	brailleBlockStart = '⠀'
)

// According to the braille patterns docs (e.g.
// https://en.wikipedia.org/wiki/Braille_Patterns), each position in a
// braille cell maps to a bit in the codepoint offset, like so:
// 0 3
// 1 4
// 2 5
// 6 7
// brailleMap translates a column-wise dot index into that bit.
var brailleMap = [brailleCellPositions]rune{1 << 0, 1 << 1, 1 << 2, 1 << 6, 1 << 3, 1 << 4, 1 << 5, 1 << 7}

type brailleCanvas struct {
	cols, rows int

	dots []bool
	// one color slot per character cell, last write wins
	colors []Color
}

func newBrailleCanvas(cols, rows int) *brailleCanvas {
	return &brailleCanvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]bool, cols*brailleCellWidth*rows*brailleCellHeight),
		colors: make([]Color, cols*rows),
	}
}

func (c *brailleCanvas) UnitCols() int { return c.cols * brailleCellWidth }
func (c *brailleCanvas) UnitRows() int { return c.rows * brailleCellHeight }

func (c *brailleCanvas) SetUnit(x, y int, color Color) {
	if x < 0 || x >= c.UnitCols() || y < 0 || y >= c.UnitRows() {
		return
	}
	c.dots[y*c.UnitCols()+x] = true
	c.colors[(y/brailleCellHeight)*c.cols+(x/brailleCellWidth)] = color
}

func (c *brailleCanvas) Buffer() *CanvasBuffer {
	buf := NewCanvasBuffer(c.cols, c.rows)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			bits := rune(0)
			for pos := 0; pos < brailleCellPositions; pos++ {
				dotX := col*brailleCellWidth + pos/brailleCellHeight
				dotY := row*brailleCellHeight + pos%brailleCellHeight
				if c.dots[dotY*c.UnitCols()+dotX] {
					bits |= brailleMap[pos]
				}
			}
			if bits != 0 {
				buf.Set(col, row, brailleBlockStart+bits, c.colors[row*c.cols+col])
			}
		}
	}
	return buf
}
