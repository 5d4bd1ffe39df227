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

package term_test

import (
	"fmt"
	"reflect"

	"github.com/gdamore/tcell"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/termplot/termplot/term"
)

// cellsMatcher matches expected screen contents against an actual
// tcell.Screen, ignoring style (the chart tests care about which glyphs
// land where, not how they're painted).
type cellsMatcher struct {
	expected tcell.SimulationScreen
}

// onScreen writes a flushable to a fake screen sized like the expected
// screen and returns that screen.
func (m *cellsMatcher) onScreen(contents term.Flushable) tcell.SimulationScreen {
	screen := tcell.NewSimulationScreen("")
	screen.Init()
	screen.SetSize(m.expected.Size())
	contents.FlushTo(screen)
	screen.Show()

	return screen
}

func (m *cellsMatcher) matchWithContents(actualCells []tcell.SimCell) (bool, error) {
	expectedCells, _, _ := m.expected.GetContents()

	expectedRunes := make([]rune, 0, len(expectedCells))
	for _, cell := range expectedCells {
		expectedRunes = append(expectedRunes, cell.Runes...)
	}
	actualRunes := make([]rune, 0, len(actualCells))
	for _, cell := range actualCells {
		actualRunes = append(actualRunes, cell.Runes...)
	}

	return reflect.DeepEqual(expectedRunes, actualRunes), nil
}

func (m *cellsMatcher) Match(actual interface{}) (bool, error) {
	if m.expected == nil && actual == nil {
		return false, fmt.Errorf("refusing to compare <nil> to <nil>")
	}

	switch actual := actual.(type) {
	case term.Flushable:
		screen := m.onScreen(actual)
		actualCells, _, _ := screen.GetContents()
		return m.matchWithContents(actualCells)
	case tcell.SimulationScreen:
		actualCells, _, _ := actual.GetContents()
		return m.matchWithContents(actualCells)
	default:
		expectedCells, _, _ := m.expected.GetContents()
		return reflect.DeepEqual(expectedCells, actual), nil
	}
}

func (m *cellsMatcher) actualScreen(actual interface{}) (tcell.SimulationScreen, bool) {
	switch actual := actual.(type) {
	case term.Flushable:
		return m.onScreen(actual), true
	case tcell.SimulationScreen:
		return actual, true
	default:
		return nil, false
	}
}

func (m *cellsMatcher) FailureMessage(actual interface{}) string {
	screen, ok := m.actualScreen(actual)
	if !ok {
		return format.Message(actual, "to equal", displayCells(m.expected))
	}
	return format.Message("\n"+displayCells(screen), "to equal (ignoring style)", "\n"+displayCells(m.expected))
}

func (m *cellsMatcher) NegatedFailureMessage(actual interface{}) string {
	screen, ok := m.actualScreen(actual)
	if !ok {
		return format.Message(actual, "not to equal", displayCells(m.expected))
	}
	return format.Message("\n"+displayCells(screen), "not to equal (ignoring style)", "\n"+displayCells(m.expected))
}

// displayCells renders the given screen's cells as they'd appear, wrapped
// to the screen width.  Doesn't account for full-width CJK runes.
func displayCells(screen tcell.SimulationScreen) string {
	cells, _, _ := screen.GetContents()
	screenCols, _ := screen.Size()

	var res []rune
	for i, cell := range cells {
		if i%screenCols == 0 && i != 0 {
			res = append(res, '\n')
		}
		if len(cell.Runes) != 0 {
			res = append(res, cell.Runes[0])
		}
	}

	return string(res)
}

// DisplayLike matches the given string against the actual screen contents,
// ignoring styling.  "actual" can be a tcell.SimulationScreen, or a
// Flushable, in which case it gets rendered to a fake screen of the given
// size first.
func DisplayLike(width, height int, text string) types.GomegaMatcher {
	expected := tcell.NewSimulationScreen("")
	expected.Init()
	expected.SetSize(width, height)

	row := -1
	col := -1
	for _, rn := range text {
		col++
		if col%width == 0 {
			row++
			col = 0
		}
		expected.SetContent(col, row, rn, nil, tcell.StyleDefault)
	}

	expected.Show()

	return &cellsMatcher{expected: expected}
}
