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

// Package benchmarks compares the line diffs of this module with other Go diff libraries.
package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/lcs"
	"znkr.io/lcs/textdiff"
)

// Impl is a diff implementation. Diff returns a unified or unified-like diff, every changed line
// starts with '-' or '+'.
type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

var Impls = []Impl{
	{
		Name: "lcs",
		Diff: func(x, y []byte) []byte {
			return textdiff.Unified(x, y)
		},
	},
	{
		Name: "lcs-no-context",
		Diff: func(x, y []byte) []byte {
			return textdiff.Unified(x, y, lcs.Context(0))
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []byte) []byte {
			// Not a unified diff, but every line carries a prefix.
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(rx, ry, false), lines)

			var buf bytes.Buffer
			for _, d := range diffs {
				prefix := " "
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				}
				for line := range strings.Lines(d.Text) {
					buf.WriteString(prefix)
					buf.WriteString(line)
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// Not a unified diff, but every line carries a prefix.
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			// Not a unified diff, but every line carries a prefix.
			d := mb0lines{
				x: splitLines(x),
				y: splitLines(y),
			}
			var buf bytes.Buffer
			a := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				for ; a < ch.A; a++ {
					buf.WriteString(" ")
					buf.Write(d.x[a])
				}
				for _, line := range d.x[ch.A : ch.A+ch.Del] {
					buf.WriteString("-")
					buf.Write(line)
				}
				for _, line := range d.y[ch.B : ch.B+ch.Ins] {
					buf.WriteString("+")
					buf.Write(line)
				}
				a += ch.Del
			}
			for ; a < len(d.x); a++ {
				buf.WriteString(" ")
				buf.Write(d.x[a])
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

// Lookup returns the implementation with the given name.
func Lookup(name string) (Impl, bool) {
	for _, impl := range Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}

// CountEdits counts the lines of a diff that start with '-' or '+', file headers are skipped.
func CountEdits(diff []byte) int {
	n := 0
	for line := range bytes.Lines(diff) {
		if bytes.HasPrefix(line, []byte("--- ")) || bytes.HasPrefix(line, []byte("+++ ")) {
			continue
		}
		if line[0] == '-' || line[0] == '+' {
			n++
		}
	}
	return n
}

func splitLines(in []byte) [][]byte {
	var lines [][]byte
	for line := range bytes.Lines(in) {
		lines = append(lines, line)
	}
	return lines
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
