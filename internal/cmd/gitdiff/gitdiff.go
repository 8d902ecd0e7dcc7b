// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// gitdiff renders the diffs of git with this module, it's meant to be used as GIT_EXTERNAL_DIFF:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// The environment variables GITDIFF_CONTEXT and GITDIFF_COLOR configure the number of context
// lines and if the output is colored. Colors are enabled by default if stdout is a terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"znkr.io/lcs"
	"znkr.io/lcs/textdiff"
)

func main() {
	if err := run(os.Args, os.Getenv, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// file is one side of the change git hands to an external diff program.
type file struct {
	name, hex, mode string
}

func run(args []string, getenv func(string) string, w io.Writer) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}
	path := args[1]
	oldFile := file{args[2], args[3], args[4]}
	newFile := file{args[5], args[6], args[7]}

	opts, err := options(getenv, isTerminal(w))
	if err != nil {
		return err
	}

	old, err := read(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %w", err)
	}
	new, err := read(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %w", err)
	}

	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", short(oldFile.hex), short(newFile.hex), newFile.mode)
	fmt.Fprintf(w, "--- a/%s\n", path)
	fmt.Fprintf(w, "+++ b/%s\n", path)
	_, err = w.Write(textdiff.Unified(old, new, opts...))
	return err
}

func options(getenv func(string) string, terminal bool) ([]lcs.Option, error) {
	var opts []lcs.Option
	if v := getenv("GITDIFF_CONTEXT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GITDIFF_CONTEXT: %w", err)
		}
		opts = append(opts, lcs.Context(n))
	}
	color := terminal
	if v := getenv("GITDIFF_COLOR"); v != "" {
		var err error
		color, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GITDIFF_COLOR: %w", err)
		}
	}
	if color {
		opts = append(opts, textdiff.TerminalColors())
	}
	return opts, nil
}

func read(f file) ([]byte, error) {
	if f.name == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(f.name)
}

func short(hex string) string {
	return hex[:min(len(hex), 10)]
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
