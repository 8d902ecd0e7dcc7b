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

// diff is a small CLI to manually run the diff implementations used for benchmarking.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"znkr.io/lcs/internal/benchmarks"
)

type config struct {
	lib   string
	x, y  string
	txtar string
	count bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "lcs", "library to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use testdata txtar file instead of two input files")
	flag.BoolVar(&cfg.count, "count", false, "only print the number of changed lines")
	flag.Parse()

	switch {
	case cfg.txtar != "" && flag.NArg() != 0:
		fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
		os.Exit(1)
	case cfg.txtar == "" && flag.NArg() != 2:
		fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
		os.Exit(1)
	}
	cfg.x, cfg.y = flag.Arg(0), flag.Arg(1)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	lib, ok := benchmarks.Lookup(cfg.lib)
	if !ok {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	x, y, err := readInputs(cfg)
	if err != nil {
		return err
	}

	out := lib.Diff(x, y)
	if cfg.count {
		fmt.Println(benchmarks.CountEdits(out))
		return nil
	}
	_, err = os.Stdout.Write(out)
	return err
}

func readInputs(cfg config) (x, y []byte, err error) {
	if cfg.txtar == "" {
		if x, err = os.ReadFile(cfg.x); err != nil {
			return nil, nil, err
		}
		if y, err = os.ReadFile(cfg.y); err != nil {
			return nil, nil, err
		}
		return x, y, nil
	}

	ar, err := txtar.ParseFile(cfg.txtar)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", cfg.txtar, err)
	}
	for _, f := range ar.Files {
		switch f.Name {
		case "x":
			x = f.Data
		case "y":
			y = f.Data
		}
	}
	return x, y, nil
}
