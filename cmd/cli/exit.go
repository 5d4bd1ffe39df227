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

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// exit codes, sysexits-style
const (
	ExitOK    = 0
	ExitError = 1
	// ExitUsage means bad flags or arguments rather than a runtime failure.
	ExitUsage = 64
)

var errPrefix = color.New(color.FgRed, color.Bold).SprintFunc()

// Exit prints the error to stderr and exits with the given code; a nil
// error exits cleanly.
func Exit(err error, code int) {
	if err == nil {
		os.Exit(ExitOK)
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", errPrefix("error:"), err)
	os.Exit(code)
}

// CheckErr is Exit(err, ExitError) when err is non-nil, and a no-op
// otherwise.
func CheckErr(err error) {
	if err != nil {
		Exit(err, ExitError)
	}
}
