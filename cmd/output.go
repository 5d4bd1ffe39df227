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

package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"gopkg.in/yaml.v2"

	"github.com/termplot/termplot/plot"
)

// ansiPalette is the rotation of terminal colors for series in one-shot
// output; hex colors from the render buffer get assigned to these in
// first-seen order, since plain ANSI output can't count on truecolor
// support.
var ansiPalette = []*color.Color{
	color.New(color.FgHiCyan),
	color.New(color.FgYellow),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgRed),
	color.New(color.FgBlue),
}

// writeANSI paints a rendered buffer to w, one line per buffer row,
// coloring runs of same-colored cells together.
func writeANSI(w io.Writer, buf *plot.CanvasBuffer) error {
	assigned := map[plot.Color]*color.Color{}
	colorFor := func(c plot.Color) *color.Color {
		if c == plot.NoColor {
			return nil
		}
		if painter, found := assigned[c]; found {
			return painter
		}
		painter := ansiPalette[len(assigned)%len(ansiPalette)]
		assigned[c] = painter
		return painter
	}

	for row := 0; row < buf.Rows; row++ {
		run := make([]rune, 0, buf.Cols)
		var runColor *plot.Color

		flush := func() error {
			if len(run) == 0 {
				return nil
			}
			text := string(run)
			if painter := colorFor(*runColor); painter != nil {
				text = painter.Sprint(text)
			}
			_, err := fmt.Fprint(w, text)
			run = run[:0]
			return err
		}

		for col := 0; col < buf.Cols; col++ {
			ch, cellColor := buf.At(col, row)
			if runColor == nil || *runColor != cellColor {
				if err := flush(); err != nil {
					return err
				}
				c := cellColor
				runColor = &c
			}
			run = append(run, ch)
		}
		if err := flush(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// frameDump is the machine-readable form of one rendered frame.
type frameDump struct {
	Viewport plot.Viewport `json:"viewport" yaml:"viewport"`
	Cols     int           `json:"cols" yaml:"cols"`
	Rows     int           `json:"rows" yaml:"rows"`
	XTicks   []float64     `json:"xTicks" yaml:"xTicks"`
	YTicks   []float64     `json:"yTicks" yaml:"yTicks"`
	Lines    []string      `json:"lines" yaml:"lines"`
}

func newFrameDump(buf *plot.CanvasBuffer, vp plot.Viewport, xTicks, yTicks []float64) frameDump {
	lines := make([]string, buf.Rows)
	for row := 0; row < buf.Rows; row++ {
		runes := make([]rune, buf.Cols)
		for col := 0; col < buf.Cols; col++ {
			runes[col], _ = buf.At(col, row)
		}
		lines[row] = string(runes)
	}
	return frameDump{
		Viewport: vp,
		Cols:     buf.Cols,
		Rows:     buf.Rows,
		XTicks:   xTicks,
		YTicks:   yTicks,
		Lines:    lines,
	}
}

func writeJSON(w io.Writer, dump frameDump) error {
	f := prettyjson.NewFormatter()
	f.Indent = 4
	f.KeyColor = color.New(color.FgGreen)
	f.NullColor = color.New(color.Underline)
	f.NumberColor = color.New(color.FgYellow)
	f.StringColor = color.New(color.FgHiCyan)
	f.BoolColor = nil

	s, err := f.Marshal(dump)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", s)
	return err
}

func writeYAML(w io.Writer, dump frameDump) error {
	o, err := yaml.Marshal(dump)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s", o)
	return err
}
