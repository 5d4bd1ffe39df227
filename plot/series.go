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

// Point is a single data sample.  Time-series X values are resolved to
// numeric epoch milliseconds by the caller before they reach this package.
type Point struct {
	X float64
	Y float64
}

// ChartType selects how a series is drawn.
type ChartType int

const (
	// TypeDefault inherits the chart-level type (line, unless overridden).
	TypeDefault ChartType = iota
	TypeLine
	TypeBar
)

// RenderMode selects the sub-cell encoding used to pack samples into
// terminal glyphs.  An "auto" mode must be resolved by the caller before
// rendering; this package only knows the concrete encodings.
type RenderMode int

const (
	ModeBraille RenderMode = iota
	ModeHalfBlock
	ModeASCII
)

// Color is a hex color tag ("#rrggbb").  The zero value means unset.
type Color string

const NoColor = Color("")

// Series is one named, ordered sequence of points.  Points are drawn in
// slice order; this package never sorts them.
type Series struct {
	// ID should be unique within a chart and stable across refreshes so
	// that palette assignment and stacking order stay consistent.
	ID   string
	Name string

	Points []Point

	// Color, if set, overrides the palette color for this series.
	Color Color
	// Type, if not TypeDefault, overrides the chart-level type.
	Type ChartType
}
