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

// asciiMarker is emitted for any marked cell regardless of which unit
// triggered it -- ascii mode has no sub-cell resolution to preserve.
const asciiMarker = '*'

// asciiCanvas is the 1:1 fallback encoder for terminals without usable
// Unicode support.
type asciiCanvas struct {
	cols, rows int

	marks  []bool
	colors []Color
}

func newASCIICanvas(cols, rows int) *asciiCanvas {
	return &asciiCanvas{
		cols:   cols,
		rows:   rows,
		marks:  make([]bool, cols*rows),
		colors: make([]Color, cols*rows),
	}
}

func (c *asciiCanvas) UnitCols() int { return c.cols }
func (c *asciiCanvas) UnitRows() int { return c.rows }

func (c *asciiCanvas) SetUnit(x, y int, color Color) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.marks[y*c.cols+x] = true
	c.colors[y*c.cols+x] = color
}

func (c *asciiCanvas) Buffer() *CanvasBuffer {
	buf := NewCanvasBuffer(c.cols, c.rows)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			if c.marks[row*c.cols+col] {
				buf.Set(col, row, asciiMarker, c.colors[row*c.cols+col])
			}
		}
	}
	return buf
}
