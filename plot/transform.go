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

// DataToScreen maps a data-space point into a cols x rows cell grid.
// Row 0 is the top of the terminal, so Y is inverted.  The result may lie
// outside the grid when the point is outside the viewport; writes are
// bounds-checked at the buffer instead.
func DataToScreen(x, y float64, vp Viewport, cols, rows int) (int, int) {
	spanX := float64(cols - 1)
	spanY := float64(rows - 1)
	if spanX < 1 {
		spanX = 1
	}
	if spanY < 1 {
		spanY = 1
	}

	sx := math.Round((x - vp.MinX) / vp.XRange() * spanX)
	sy := math.Round((1 - (y-vp.MinY)/vp.YRange()) * spanY)
	return int(sx), int(sy)
}

// ScreenToData is the algebraic inverse of DataToScreen.  It is used for
// cursor-to-data mapping and for scroll-anchored zoom; recovering a point
// through both transforms stays within half a cell on each axis.
func ScreenToData(sx, sy int, vp Viewport, cols, rows int) (float64, float64) {
	spanX := float64(cols - 1)
	spanY := float64(rows - 1)
	if spanX < 1 {
		spanX = 1
	}
	if spanY < 1 {
		spanY = 1
	}

	x := vp.MinX + float64(sx)/spanX*vp.XRange()
	y := vp.MinY + (1-float64(sy)/spanY)*vp.YRange()
	return x, y
}
