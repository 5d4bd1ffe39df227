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

// CanvasBuffer is the final character grid handed to the terminal painter,
// plus a parallel grid of color tags.  Buffers are produced fresh on every
// render call and have no identity across frames; once a buffer has been
// returned from Render it must be treated as immutable.
type CanvasBuffer struct {
	Cols, Rows int

	// Chars and Colors are indexed [row][col].
	Chars  [][]rune
	Colors [][]Color
}

// NewCanvasBuffer allocates an all-space buffer.
func NewCanvasBuffer(cols, rows int) *CanvasBuffer {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	buf := &CanvasBuffer{
		Cols:   cols,
		Rows:   rows,
		Chars:  make([][]rune, rows),
		Colors: make([][]Color, rows),
	}
	for row := 0; row < rows; row++ {
		buf.Chars[row] = make([]rune, cols)
		buf.Colors[row] = make([]Color, cols)
		for col := 0; col < cols; col++ {
			buf.Chars[row][col] = ' '
		}
	}
	return buf
}

// Set writes one cell.  Out-of-range coordinates are silently dropped:
// partially off-screen geometry (a segment crossing the viewport edge, say)
// is normal, not exceptional.
func (b *CanvasBuffer) Set(col, row int, ch rune, color Color) {
	if col < 0 || col >= b.Cols || row < 0 || row >= b.Rows {
		return
	}
	b.Chars[row][col] = ch
	b.Colors[row][col] = color
}

// At reads back one cell.  Out-of-range coordinates read as a blank cell.
func (b *CanvasBuffer) At(col, row int) (rune, Color) {
	if col < 0 || col >= b.Cols || row < 0 || row >= b.Rows {
		return ' ', NoColor
	}
	return b.Chars[row][col], b.Colors[row][col]
}

// MergeBuffers overlays overlay onto base cell by cell and returns a new
// buffer sized like base: a non-space overlay character wins along with its
// color, a space never erases anything.  It is used both to stack series
// buffers into an accumulating result and to apply overlays afterwards.
func MergeBuffers(base, overlay *CanvasBuffer) *CanvasBuffer {
	out := NewCanvasBuffer(base.Cols, base.Rows)
	for row := 0; row < base.Rows; row++ {
		for col := 0; col < base.Cols; col++ {
			ch, color := base.Chars[row][col], base.Colors[row][col]
			if over, overColor := overlay.At(col, row); over != ' ' {
				ch, color = over, overColor
			}
			out.Chars[row][col] = ch
			out.Colors[row][col] = color
		}
	}
	return out
}

// grid and crosshair glyphs per render mode
func overlayGlyphs(mode RenderMode) (gridH, gridV, lineH, lineV, center rune) {
	if mode == ModeASCII {
		return '-', '|', '-', '|', '+'
	}
	return '┈', '┊', '─', '│', '┼'
}

// drawGrid writes grid lines at nice tick rows and columns, landing only in
// cells that are still blank so data marks are never erased.
func drawGrid(buf *CanvasBuffer, vp Viewport, mode RenderMode) {
	gridH, gridV, _, _, _ := overlayGlyphs(mode)

	for _, tick := range Ticks(vp.MinY, vp.MaxY, gridTickCount(buf.Rows)) {
		_, row := DataToScreen(vp.MinX, tick, vp, buf.Cols, buf.Rows)
		for col := 0; col < buf.Cols; col++ {
			if ch, _ := buf.At(col, row); ch == ' ' {
				buf.Set(col, row, gridH, NoColor)
			}
		}
	}
	for _, tick := range Ticks(vp.MinX, vp.MaxX, gridTickCount(buf.Cols)) {
		col, _ := DataToScreen(tick, vp.MinY, vp, buf.Cols, buf.Rows)
		for row := 0; row < buf.Rows; row++ {
			if ch, _ := buf.At(col, row); ch == ' ' {
				buf.Set(col, row, gridV, NoColor)
			}
		}
	}
}

func gridTickCount(cells int) int {
	count := cells / 5
	if count < 2 {
		count = 2
	}
	return count
}

// Crosshair marks a character cell the crosshair overlay is centered on.
type Crosshair struct {
	Col, Row int
}

// drawCrosshair threads a full-width and full-height line through the
// crosshair cell.  Like the grid it skips occupied cells, except for its
// center point, which always overwrites.
func drawCrosshair(buf *CanvasBuffer, ch Crosshair, mode RenderMode) {
	_, _, lineH, lineV, center := overlayGlyphs(mode)

	for col := 0; col < buf.Cols; col++ {
		if existing, _ := buf.At(col, ch.Row); existing == ' ' {
			buf.Set(col, ch.Row, lineH, NoColor)
		}
	}
	for row := 0; row < buf.Rows; row++ {
		if existing, _ := buf.At(ch.Col, row); existing == ' ' {
			buf.Set(ch.Col, row, lineV, NoColor)
		}
	}
	buf.Set(ch.Col, ch.Row, center, NoColor)
}
