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

// Canvas is the strategy interface shared by the three sub-cell encoders.
// A canvas is an oversampled boolean grid over a cols x rows character
// area: braille packs 2x4 dots per cell, half-block 2x2 pixels per cell,
// and ascii maps 1:1.  The encoder is picked once per render call so that
// the series renderer never branches on the mode itself.
type Canvas interface {
	// UnitCols and UnitRows report the canvas resolution in set-unit space.
	UnitCols() int
	UnitRows() int

	// SetUnit marks one sub-cell unit filled.  Marks outside the canvas
	// are silently dropped.  When several colored units share a character
	// cell, the last write wins for that cell's color -- an accepted
	// simplification, not blending.
	SetUnit(x, y int, color Color)

	// Buffer folds the unit grid into a character buffer.
	Buffer() *CanvasBuffer
}

// NewCanvas returns the encoder for the given render mode, sized to
// cols x rows character cells.
func NewCanvas(mode RenderMode, cols, rows int) Canvas {
	switch mode {
	case ModeHalfBlock:
		return newHalfBlockCanvas(cols, rows)
	case ModeASCII:
		return newASCIICanvas(cols, rows)
	default:
		return newBrailleCanvas(cols, rows)
	}
}
