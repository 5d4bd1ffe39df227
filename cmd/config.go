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
	"os"

	"gopkg.in/yaml.v2"

	"github.com/termplot/termplot/plot"
)

// ChartConfig is the optional YAML chart configuration.  Flags given on the
// command line win over values from the file.
type ChartConfig struct {
	Type     string `yaml:"type,omitempty"`
	Mode     string `yaml:"mode,omitempty"`
	Grid     bool   `yaml:"grid,omitempty"`
	TimeAxis bool   `yaml:"timeAxis,omitempty"`

	Axes   AxesConfig              `yaml:"axes,omitempty"`
	Series map[string]SeriesConfig `yaml:"series,omitempty"`
}

// AxesConfig pins viewport endpoints; unset endpoints stay computed from
// the data.
type AxesConfig struct {
	MinX *float64 `yaml:"minX,omitempty"`
	MaxX *float64 `yaml:"maxX,omitempty"`
	MinY *float64 `yaml:"minY,omitempty"`
	MaxY *float64 `yaml:"maxY,omitempty"`
}

// SeriesConfig customizes one series, keyed by its ID (the CSV column
// header).
type SeriesConfig struct {
	Name  string `yaml:"name,omitempty"`
	Color string `yaml:"color,omitempty"`
	Type  string `yaml:"type,omitempty"`
}

func loadChartConfig(path string) (*ChartConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read chart config: %w", err)
	}
	config := &ChartConfig{}
	if err := yaml.UnmarshalStrict(raw, config); err != nil {
		return nil, fmt.Errorf("unable to parse chart config: %w", err)
	}
	return config, nil
}

func (c *ChartConfig) overrides() plot.AxisOverrides {
	return plot.AxisOverrides{
		MinX: c.Axes.MinX,
		MaxX: c.Axes.MaxX,
		MinY: c.Axes.MinY,
		MaxY: c.Axes.MaxY,
	}
}

// applyTo decorates the loaded series with per-series config.
func (c *ChartConfig) applyTo(series []plot.Series) error {
	for i := range series {
		sc, found := c.Series[series[i].ID]
		if !found {
			continue
		}
		if sc.Name != "" {
			series[i].Name = sc.Name
		}
		if sc.Color != "" {
			series[i].Color = plot.Color(sc.Color)
		}
		if sc.Type != "" {
			seriesType, err := parseChartType(sc.Type)
			if err != nil {
				return fmt.Errorf("series %q: %w", series[i].ID, err)
			}
			series[i].Type = seriesType
		}
	}
	return nil
}

func parseChartType(name string) (plot.ChartType, error) {
	switch name {
	case "", "default":
		return plot.TypeDefault, nil
	case "line":
		return plot.TypeLine, nil
	case "bar":
		return plot.TypeBar, nil
	}
	return plot.TypeDefault, fmt.Errorf("unknown chart type %q (want line or bar)", name)
}

func parseRenderMode(name string) (plot.RenderMode, error) {
	switch name {
	case "", "braille":
		return plot.ModeBraille, nil
	case "half", "halfblock":
		return plot.ModeHalfBlock, nil
	case "ascii":
		return plot.ModeASCII, nil
	}
	return plot.ModeBraille, fmt.Errorf("unknown render mode %q (want braille, half, or ascii)", name)
}
