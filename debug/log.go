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

package debug

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// if this directory is defined, the loggers will write to per-concern files
// under it; otherwise they discard everything.  A terminal app can't log to
// stdout while tcell owns the screen, so file logging is the only usable
// debug channel in interactive mode.
const debugLogDir = "TERMPLOT_DEBUG_LOG_DIRECTORY"

var (
	lock         sync.Mutex
	cleanupFuncs = make([]LoggerCleanupFunc, 0)
)

type LoggerCleanupFunc func()

func initNoopLogger() *log.Logger {
	return log.New(io.Discard, "", log.Llongfile)
}

func registerCleanupFunc(cleanup func()) {
	lock.Lock()
	defer lock.Unlock()
	cleanupFuncs = append(cleanupFuncs, cleanup)
}

// Teardown flushes and closes any log files opened by NewDebugLogger.
func Teardown() {
	lock.Lock()
	defer lock.Unlock()
	for _, f := range cleanupFuncs {
		f()
	}
	cleanupFuncs = cleanupFuncs[:0]
}

// NewDebugLogger returns a logger writing to logfileName under the debug
// log directory, or a noop logger if the directory isn't configured.
func NewDebugLogger(logfileName string) *log.Logger {
	lgr := initNoopLogger()
	if dir := os.Getenv(debugLogDir); dir != "" {
		f, err := os.OpenFile(filepath.Join(dir, logfileName), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			lgr = log.New(f, "", log.LstdFlags)
			lgr.Printf("%v enabled\n", logfileName)
			registerCleanupFunc(func() {
				f.Close()
			})
		}
	}
	return lgr
}
