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

// Bounds is a rectangle in data space.  Valid bounds always have
// MinX < MaxX and MinY < MaxY; a degenerate axis is widened before use.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b Bounds) XRange() float64 { return b.MaxX - b.MinX }
func (b Bounds) YRange() float64 { return b.MaxY - b.MinY }

// defaultBounds is used when there is no data to compute bounds from.
var defaultBounds = Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}

// ComputeDataBounds scans every point of every series.  Empty input (or
// input with no finite coordinates) yields the default [0,100]x[0,100]
// bounds, and a flat axis is widened by exactly one on each side so that
// downstream math never sees a zero range.
func ComputeDataBounds(series []Series) Bounds {
	// min starts at +inf and max at -inf so any real value replaces them
	b := Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}

	found := false
	for _, s := range series {
		for _, pt := range s.Points {
			if math.IsNaN(pt.X) || math.IsInf(pt.X, 0) || math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0) {
				continue
			}
			found = true
			if pt.X < b.MinX {
				b.MinX = pt.X
			}
			if pt.X > b.MaxX {
				b.MaxX = pt.X
			}
			if pt.Y < b.MinY {
				b.MinY = pt.Y
			}
			if pt.Y > b.MaxY {
				b.MaxY = pt.Y
			}
		}
	}

	if !found {
		return defaultBounds
	}

	if b.MinX == b.MaxX {
		b.MinX--
		b.MaxX++
	}
	if b.MinY == b.MaxY {
		b.MinY--
		b.MaxY++
	}

	return b
}
