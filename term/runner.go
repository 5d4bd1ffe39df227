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

package term

import (
	"context"
	"sync"

	"github.com/gdamore/tcell"
)

// Runner is in charge of the main event loop.  It sets up the screen and
// handles events (input, resizes, repaint requests), delegating out to the
// view and the input handlers.
//
// At any given point in time the runner has a current View.  Once Run
// starts the loop:
//
// - "Resize" events trigger a resize & redraw of the current view
// - "Update" events install a new view and redraw
// - "Repaint" events repaint the current view
// - "Key" events go to KeyHandler, "Mouse" events to MouseHandler
//
// Input handlers are expected to mutate whatever state the view renders
// from (the viewport, typically) and then call RequestRepaint, so the loop
// stays the single writer of the screen.
type Runner struct {
	screen   tcell.Screen
	screenMu sync.Mutex

	// KeyHandler receives key events produced during Run.  It must be
	// specified.
	KeyHandler func(*tcell.EventKey)

	// MouseHandler, if set, receives mouse events (and causes mouse
	// reporting to be enabled on the screen).
	MouseHandler func(*tcell.EventMouse)

	// MakeScreen allows custom screens to be used.  Mainly useful for
	// testing; most cases can use the default value.
	MakeScreen func() (tcell.Screen, error)

	// OnStart is run once the screen is initialized and the event loop is
	// *about* to start.  Useful for avoiding races against screen
	// initialization in tests.
	OnStart func()
}

// Run initializes the screen, starts the event loop with the given initial
// view, and runs until the context is done, at which point the screen is
// shut down.
func (r *Runner) Run(ctx context.Context, initialView View) error {
	makeScreen := r.MakeScreen
	if makeScreen == nil {
		makeScreen = tcell.NewScreen
	}
	screen, err := makeScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	if r.MouseHandler != nil {
		screen.EnableMouse()
	}

	r.screenMu.Lock()
	r.screen = screen
	r.screenMu.Unlock()

	mainView := initialView

	// paint once up front in case we don't get the immediate resize event
	if mainView != nil {
		mainView.FlushTo(screen)
		screen.Show()
	}

	evtLoopDone := make(chan struct{})
	go func() {
		defer close(evtLoopDone)
		if r.OnStart != nil {
			r.OnStart()
		}
		for evt := screen.PollEvent(); evt != nil; evt = screen.PollEvent() {
			screenCols, screenRows := screen.Size()
			switch evt := evt.(type) {
			case *tcell.EventKey:
				r.KeyHandler(evt)
				continue
			case *tcell.EventMouse:
				if r.MouseHandler != nil {
					r.MouseHandler(evt)
				}
				continue
			case *tcell.EventInterrupt:
				if newView, hasNewView := evt.Data().(View); hasNewView {
					// clearing is less efficient, but means we don't get
					// artifacts from panes shrinking
					screen.Clear()
					mainView = newView
					mainView.SetBox(PositionBox{Cols: screenCols, Rows: screenRows})
				}
				// repaint below
			case *tcell.EventResize:
				screenCols, screenRows = evt.Size()
				if mainView != nil {
					mainView.SetBox(PositionBox{Cols: screenCols, Rows: screenRows})
				}
				screen.Clear()
				// repaint below
			default:
				return
			}

			if mainView == nil {
				continue
			}
			mainView.FlushTo(screen)
			screen.Show()
		}
	}()

	<-ctx.Done()
	screen.Fini()

	// wait for the event loop to actually stop, mostly so tests don't
	// leak goroutines that poke at shared state
	<-evtLoopDone

	return nil
}

// RequestRepaint requests a repaint of the current view, if any.
// It will not block.
func (r *Runner) RequestRepaint() {
	r.screenMu.Lock()
	defer r.screenMu.Unlock()

	r.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// RequestUpdate replaces the current view & requests a paint of it.
// It will not block.
func (r *Runner) RequestUpdate(newView View) {
	r.screenMu.Lock()
	defer r.screenMu.Unlock()

	r.screen.PostEvent(tcell.NewEventInterrupt(newView))
}
