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
	"os"

	"github.com/spf13/cobra"

	"github.com/termplot/termplot/plot"
)

// PlotFlags holds the raw command-line flag values.
type PlotFlags struct {
	Type     string
	Mode     string
	Output   string
	Grid     bool
	TimeAxis bool
	Scale    string
	Width    int
	Height   int
	Config   string
}

// PlotOptions provides everything required to render one chart invocation.
type PlotOptions struct {
	args  []string
	flags PlotFlags

	config    *ChartConfig
	series    []plot.Series
	chartType plot.ChartType
	mode      plot.RenderMode
	scale     plot.RangeScale

	in  io.Reader
	out io.Writer
}

// NewPlotOptions provides an instance of PlotOptions with default streams.
func NewPlotOptions() *PlotOptions {
	return &PlotOptions{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func addFlags(cmd *cobra.Command, options *PlotOptions) {
	cmd.Flags().StringVarP(&options.flags.Type, "type", "t", "line", "chart type: line or bar")
	cmd.Flags().StringVarP(&options.flags.Mode, "mode", "m", "braille", "render mode: braille, half, or ascii")
	cmd.Flags().StringVarP(&options.flags.Output, "output", "o", "tui", "output: tui, ansi, json, or yaml")
	cmd.Flags().BoolVarP(&options.flags.Grid, "grid", "g", false, "overlay a grid aligned to axis ticks")
	cmd.Flags().BoolVar(&options.flags.TimeAxis, "time-axis", false, "treat X values as timestamps")
	cmd.Flags().StringVar(&options.flags.Scale, "scale", "linear", "Y scale: linear or log10")
	cmd.Flags().IntVarP(&options.flags.Width, "width", "W", 80, "chart width in cells for one-shot output")
	cmd.Flags().IntVarP(&options.flags.Height, "height", "H", 24, "chart height in cells for one-shot output")
	cmd.Flags().StringVarP(&options.flags.Config, "config", "c", "", "YAML chart config file")
}

// NewCmdTermplot provides the root cobra command.
func NewCmdTermplot() *cobra.Command {
	o := NewPlotOptions()
	cmd := &cobra.Command{
		Use:   "termplot [flags] [data.csv ...]",
		Short: "plot CSV time series on the terminal",
		Example: `
termplot data.csv                        # interactive chart (hjkl pan, +/- zoom, q quits)
cat data.csv | termplot -o ansi          # one-shot colored dump to stdout
termplot -t bar -m half data.csv         # half-block bar chart
termplot --time-axis -c chart.yaml x.csv # timestamps on X, styling from chart.yaml
`,
		SilenceUsage: true,

		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Complete(c, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	addFlags(cmd, o)

	return cmd
}

// Complete loads the config file and the series data.
func (o *PlotOptions) Complete(cmd *cobra.Command, args []string) error {
	o.args = args

	o.config = &ChartConfig{}
	if o.flags.Config != "" {
		config, err := loadChartConfig(o.flags.Config)
		if err != nil {
			return err
		}
		o.config = config
	}

	// file-level config supplies defaults that unset flags fall back to
	if !cmd.Flags().Changed("type") && o.config.Type != "" {
		o.flags.Type = o.config.Type
	}
	if !cmd.Flags().Changed("mode") && o.config.Mode != "" {
		o.flags.Mode = o.config.Mode
	}
	if !cmd.Flags().Changed("grid") && o.config.Grid {
		o.flags.Grid = true
	}
	if !cmd.Flags().Changed("time-axis") && o.config.TimeAxis {
		o.flags.TimeAxis = true
	}

	var err error
	o.chartType, err = parseChartType(o.flags.Type)
	if err != nil {
		return err
	}
	o.mode, err = parseRenderMode(o.flags.Mode)
	if err != nil {
		return err
	}

	switch o.flags.Scale {
	case "", "linear":
		o.scale = plot.LinearScale
	case "log10", "log":
		o.scale = plot.Log10Scale
	default:
		return fmt.Errorf("unknown scale %q (want linear or log10)", o.flags.Scale)
	}

	return o.loadSeries()
}

func (o *PlotOptions) loadSeries() error {
	if len(o.args) == 0 {
		series, err := loadSeriesCSV(o.in, o.flags.TimeAxis)
		if err != nil {
			return err
		}
		o.series = series
	}
	for _, path := range o.args {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		series, err := loadSeriesCSV(f, o.flags.TimeAxis)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		o.series = append(o.series, series...)
	}

	return o.config.applyTo(o.series)
}

// Validate ensures that all required arguments and flag values are provided.
func (o *PlotOptions) Validate() error {
	if len(o.series) == 0 {
		return fmt.Errorf("no data series found in input")
	}
	switch o.flags.Output {
	case "tui", "ansi", "json", "yaml":
	default:
		return fmt.Errorf("unknown output %q (want tui, ansi, json, or yaml)", o.flags.Output)
	}
	if o.flags.Output != "tui" && (o.flags.Width < 1 || o.flags.Height < 1) {
		return fmt.Errorf("width and height must be positive, got %dx%d", o.flags.Width, o.flags.Height)
	}
	return nil
}

func (o *PlotOptions) Run() error {
	viewports := plot.NewViewportManager(o.series, plot.Config{
		Overrides: o.config.overrides(),
	})

	if o.flags.Output == "tui" {
		return runTUI(o.series, viewports, o.chartType, o.mode, o.scale, o.flags.Grid, o.flags.TimeAxis)
	}

	vp := viewports.Viewport()
	buf := plot.Render(o.series, vp, o.flags.Width, o.flags.Height, plot.Options{
		Type:     o.chartType,
		Mode:     o.mode,
		Scale:    o.scale,
		ShowGrid: o.flags.Grid,
	})

	switch o.flags.Output {
	case "ansi":
		return writeANSI(o.out, buf)
	case "json", "yaml":
		xTicks := plot.Ticks(vp.MinX, vp.MaxX, 6)
		if o.flags.TimeAxis {
			xTicks = plot.TimeTicks(vp.MinX, vp.MaxX, 6)
		}
		dump := newFrameDump(buf, vp, xTicks, plot.Ticks(vp.MinY, vp.MaxY, 6))
		if o.flags.Output == "json" {
			return writeJSON(o.out, dump)
		}
		return writeYAML(o.out, dump)
	}
	return nil
}
