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

// Ticks picks "nice" tick values for a linear axis: the rough step
// (max-min)/(count-1) is rounded up to 1, 2, 5, or 10 times its power of
// ten, and every multiple of that step inside [min,max] is emitted.
// Multiples between the snapped nice-min/nice-max but outside the original
// range are dropped, so the first and last tick never overshoot the axis.
func Ticks(min, max float64, count int) []float64 {
	if !(max > min) {
		return nil
	}
	if count < 2 {
		count = 2
	}

	roughStep := (max - min) / float64(count-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(roughStep)))
	residual := roughStep / magnitude

	var niceStep float64
	switch {
	case residual <= 1:
		niceStep = magnitude
	case residual <= 2:
		niceStep = 2 * magnitude
	case residual <= 5:
		niceStep = 5 * magnitude
	default:
		niceStep = 10 * magnitude
	}

	niceMin := math.Floor(min/niceStep) * niceStep
	niceMax := math.Ceil(max/niceStep) * niceStep

	// multiples are computed by index rather than accumulation, and the
	// range check gets a hair of slack, so float noise never drops an
	// endpoint tick
	eps := niceStep * 1e-9
	var ticks []float64
	for i := 0; ; i++ {
		v := niceMin + float64(i)*niceStep
		if v > niceMax+niceStep/2 {
			break
		}
		if v >= min-eps && v <= max+eps {
			ticks = append(ticks, v)
		}
	}
	return ticks
}

const (
	millisMinute = 60 * 1000.0
	millisHour   = 60 * millisMinute
	millisDay    = 24 * millisHour
)

// timeTickLadder is walked top-down; the first rung whose threshold the
// millisecond range exceeds supplies the tick interval.
var timeTickLadder = []struct {
	threshold float64
	step      float64
}{
	{365 * millisDay, 30 * millisDay},
	{30 * millisDay, 7 * millisDay},
	{7 * millisDay, millisDay},
	{millisDay, 6 * millisHour},
	{6 * millisHour, millisHour},
	{millisHour, 15 * millisMinute},
}

const timeTickFallback = 5 * millisMinute

// TimeTicks picks interval-aligned ticks for an epoch-millisecond axis.
// Ticks start at the first interval-aligned timestamp at or after min,
// continue while they stay at or below max, and stop once count ticks have
// been emitted.
func TimeTicks(min, max float64, count int) []float64 {
	if !(max > min) || count <= 0 {
		return nil
	}

	step := float64(timeTickFallback)
	for _, rung := range timeTickLadder {
		if max-min > rung.threshold {
			step = rung.step
			break
		}
	}

	var ticks []float64
	for v := math.Ceil(min/step) * step; v <= max && len(ticks) < count; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}
