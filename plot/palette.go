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

	"github.com/lucasb-eyer/go-colorful"
)

// stepping the hue by the golden angle keeps any two palette neighbors
// visually distinct without ever repeating exactly
const paletteHueStep = 137.5

// PaletteColor returns the default color for the series at the given index.
// It is a pure function of the index, so a series keeps its color across
// renders without any shared palette counter.
func PaletteColor(index int) Color {
	if index < 0 {
		index = -index
	}
	hue := math.Mod(30+float64(index)*paletteHueStep, 360)
	return Color(colorful.Hsv(hue, 0.65, 0.95).Hex())
}
