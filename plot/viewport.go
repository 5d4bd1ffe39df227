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
	MinZoom = 0.1
	MaxZoom = 100.0

	// fraction of each axis range added on both ends when auto-bounds is on
	boundsPadding = 0.05
)

// Viewport is the visible data-space rectangle plus a zoom multiplier.
// A viewport is owned by exactly one ViewportManager; everything else reads
// it by value and never mutates it.
type Viewport struct {
	Bounds
	Zoom float64
}

// AxisOverrides pins individual viewport endpoints to explicit values.
// Overridden endpoints always win over computed (and padded) ones, and
// mixing a computed endpoint with an overridden one on the same axis is
// allowed.
type AxisOverrides struct {
	MinX, MaxX *float64
	MinY, MaxY *float64
}

// Config controls how the initial viewport is derived from data bounds.
type Config struct {
	// DisableAutoBounds skips the padding applied around computed bounds.
	DisableAutoBounds bool

	Overrides AxisOverrides
}

// ViewportManager owns the viewport for one chart session.  All viewport
// mutation goes through its methods; callers must serialize them (the
// intended setup is one active viewport per chart, driven by a single input
// loop).  Every operation is total: bad factors get clamped, never
// rejected.
type ViewportManager struct {
	current Viewport
	initial Viewport
	config  Config
}

// NewViewportManager computes the initial viewport from the given series
// and config, and captures it so that Reset can restore it later.
func NewViewportManager(series []Series, config Config) *ViewportManager {
	vp := initialViewport(ComputeDataBounds(series), config)
	return &ViewportManager{current: vp, initial: vp, config: config}
}

// Viewport returns the current viewport.
func (m *ViewportManager) Viewport() Viewport { return m.current }

func initialViewport(bounds Bounds, config Config) Viewport {
	vp := Viewport{Bounds: bounds, Zoom: 1}

	if !config.DisableAutoBounds {
		padX := bounds.XRange() * boundsPadding
		padY := bounds.YRange() * boundsPadding
		vp.MinX -= padX
		vp.MaxX += padX
		vp.MinY -= padY
		vp.MaxY += padY
	}

	o := config.Overrides
	if o.MinX != nil {
		vp.MinX = *o.MinX
	}
	if o.MaxX != nil {
		vp.MaxX = *o.MaxX
	}
	if o.MinY != nil {
		vp.MinY = *o.MinY
	}
	if o.MaxY != nil {
		vp.MaxY = *o.MaxY
	}

	return vp
}

// Pan shifts the viewport by dx/dy expressed as fractions of the *current*
// axis ranges.  Both bounds of an axis move together; zoom is unchanged.
func (m *ViewportManager) Pan(dx, dy float64) {
	shiftX := dx * m.current.XRange()
	shiftY := dy * m.current.YRange()
	m.current.MinX += shiftX
	m.current.MaxX += shiftX
	m.current.MinY += shiftY
	m.current.MaxY += shiftY
}

// Zoom multiplies the zoom level by factor, clamping the result to
// [MinZoom, MaxZoom].  The ranges shrink by the *clamped* factor, so
// repeated zooms compose consistently even at the clamp bounds.  The anchor
// keeps its relative position inside the new bounds; a nil anchor zooms
// about the viewport center.
func (m *ViewportManager) Zoom(factor float64, anchor *Point) {
	newZoom := clampZoom(m.current.Zoom * factor)
	actual := newZoom / m.current.Zoom

	ax := (m.current.MinX + m.current.MaxX) / 2
	ay := (m.current.MinY + m.current.MaxY) / 2
	if anchor != nil {
		ax = anchor.X
		ay = anchor.Y
	}

	relX := (ax - m.current.MinX) / m.current.XRange()
	relY := (ay - m.current.MinY) / m.current.YRange()

	newXRange := m.current.XRange() / actual
	newYRange := m.current.YRange() / actual

	m.current.MinX = ax - relX*newXRange
	m.current.MaxX = m.current.MinX + newXRange
	m.current.MinY = ay - relY*newYRange
	m.current.MaxY = m.current.MinY + newYRange
	m.current.Zoom = newZoom
}

// Reset restores the viewport captured at construction time, not the
// current data bounds.
func (m *ViewportManager) Reset() {
	m.current = m.initial
}

// FitToData recomputes bounds from the given series, reapplies padding and
// overrides, and sets zoom back to 1, discarding any pan/zoom history.
func (m *ViewportManager) FitToData(series []Series) {
	m.current = initialViewport(ComputeDataBounds(series), m.config)
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
