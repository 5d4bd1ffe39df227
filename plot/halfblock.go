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
	halfBlockCellWidth  = 2
	halfBlockCellHeight = 2
)

const (
	upperHalfBlock = '▀'
	lowerHalfBlock = '▄'
	fullBlock      = '█'
)

// halfBlockCanvas packs a 2x2 pixel grid into one of four block glyphs per
// character cell.  Horizontal placement within a cell is lost in the fold
// (a pixel on either side of a pair lights up the whole half), trading
// precision for the doubled vertical resolution.
type halfBlockCanvas struct {
	cols, rows int

	pixels []bool
	colors []Color
}

func newHalfBlockCanvas(cols, rows int) *halfBlockCanvas {
	return &halfBlockCanvas{
		cols:   cols,
		rows:   rows,
		pixels: make([]bool, cols*halfBlockCellWidth*rows*halfBlockCellHeight),
		colors: make([]Color, cols*rows),
	}
}

func (c *halfBlockCanvas) UnitCols() int { return c.cols * halfBlockCellWidth }
func (c *halfBlockCanvas) UnitRows() int { return c.rows * halfBlockCellHeight }

func (c *halfBlockCanvas) SetUnit(x, y int, color Color) {
	if x < 0 || x >= c.UnitCols() || y < 0 || y >= c.UnitRows() {
		return
	}
	c.pixels[y*c.UnitCols()+x] = true
	c.colors[(y/halfBlockCellHeight)*c.cols+(x/halfBlockCellWidth)] = color
}

func (c *halfBlockCanvas) pixelAt(x, y int) bool {
	return c.pixels[y*c.UnitCols()+x]
}

func (c *halfBlockCanvas) Buffer() *CanvasBuffer {
	buf := NewCanvasBuffer(c.cols, c.rows)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			left := col * halfBlockCellWidth
			top := row * halfBlockCellHeight

			upper := c.pixelAt(left, top) || c.pixelAt(left+1, top)
			lower := c.pixelAt(left, top+1) || c.pixelAt(left+1, top+1)

			var glyph rune
			switch {
			case upper && lower:
				glyph = fullBlock
			case upper:
				glyph = upperHalfBlock
			case lower:
				glyph = lowerHalfBlock
			default:
				continue
			}
			buf.Set(col, row, glyph, c.colors[row*c.cols+col])
		}
	}
	return buf
}
