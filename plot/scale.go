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

// RangeScale remaps Y values before they are projected to the screen.
// Use it to apply log scales and the like.
type RangeScale func(float64) float64

// LinearScale is the identity scale.
func LinearScale(v float64) float64 { return v }

// Log10Scale compresses Y logarithmically.  Values at or below zero map to
// zero instead of being excluded, which silently distorts such points; this
// matches the historical behavior (see DESIGN.md) rather than any claim
// that it is the right thing to do.
func Log10Scale(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log10(v)
}
