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

// Package textdiff compares text line by line using longest common subsequences.
//
// All functions accept both string and []byte. Lines returned in edits and hunks alias the inputs,
// they include the trailing newline character if the input had one.
package textdiff

import (
	"fmt"

	"znkr.io/lcs"
	"znkr.io/lcs/internal/byteview"
	"znkr.io/lcs/internal/config"
)

// Edit describes a single edit of a line-by-line diff.
type Edit[T string | []byte] struct {
	Op      lcs.Op
	LineNoX int // Line number in x, -1 for insertions
	LineNoY int // Line number in y, -1 for deletions
	Line    T   // Line from x for matches and deletions, from y for insertions
}

// Hunk describes a sequence of consecutive line edits.
type Hunk[T string | []byte] struct {
	LineNoX, EndLineNoX int // Lines x[LineNoX:EndLineNoX] are covered by this hunk
	LineNoY, EndLineNoY int // Lines y[LineNoY:EndLineNoY] are covered by this hunk
	Edits               []Edit[T]
}

// Edits compares the lines in x and y and returns the changes necessary to convert from one to the
// other. Every line of x and y is part of exactly one edit.
func Edits[T string | []byte](x, y T) []Edit[T] {
	xlines, ylines := splitLines(x), splitLines(y)
	edits := lcs.New(xlines, ylines).Diff()
	out := make([]Edit[T], len(edits))
	for i, e := range edits {
		out[i] = convertEdit[T](e)
	}
	return out
}

// Hunks compares the lines in x and y and returns the changes necessary to convert from one to the
// other, grouped into hunks with some surrounding context.
//
// If x and y are identical, the output has length zero.
//
// The following option is supported: [lcs.Context]
func Hunks[T string | []byte](x, y T, opts ...lcs.Option) []Hunk[T] {
	xlines, ylines := splitLines(x), splitLines(y)
	hunks := lcs.New(xlines, ylines).Hunks(opts...)
	if len(hunks) == 0 {
		return nil
	}
	out := make([]Hunk[T], len(hunks))
	for i, h := range hunks {
		edits := make([]Edit[T], len(h.Edits))
		for j, e := range h.Edits {
			edits[j] = convertEdit[T](e)
		}
		out[i] = Hunk[T]{
			LineNoX:    h.PosX,
			EndLineNoX: h.EndX,
			LineNoY:    h.PosY,
			EndLineNoY: h.EndY,
			Edits:      edits,
		}
	}
	return out
}

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

const missingNewline = "\\ No newline at end of file\n"

// Unified compares the lines in x and y and returns the changes necessary to convert from one to
// the other in unified format. If x and y are identical, the output is empty.
//
// The following options are supported: [lcs.Context], [TerminalColors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Unified[T string | []byte](x, y T, opts ...lcs.Option) T {
	cfg := config.FromOptions(opts, config.Context|config.Color)

	xlines, ylines := splitLines(x), splitLines(y)
	hunks := lcs.New(xlines, ylines).Hunks(lcs.Context(cfg.Context))

	var colors config.ColorConfig
	if cfg.Color != nil {
		colors = *cfg.Color
	}

	var b byteview.Builder[T]
	b.Grow(unifiedSize(hunks))
	for _, h := range hunks {
		header := fmt.Sprintf("@@ -%s +%s @@", hunkRange(h.PosX, h.EndX), hunkRange(h.PosY, h.EndY))
		writeColored(&b, colors.HunkHeader, "", byteview.From(header))
		for _, e := range h.Edits {
			switch e.Op {
			case lcs.Match:
				writeLine(&b, colors.Match, prefixMatch, e.X)
			case lcs.Delete:
				writeLine(&b, colors.Delete, prefixDelete, e.X)
			case lcs.Insert:
				writeLine(&b, colors.Insert, prefixInsert, e.Y)
			default:
				panic("never reached")
			}
		}
	}
	return b.Build()
}

// hunkRange formats a range of lines for a hunk header. Lines are numbered from 1, an empty range
// names the line before it.
func hunkRange(pos, end int) string {
	if pos == end {
		return fmt.Sprintf("%d,0", pos)
	}
	return fmt.Sprintf("%d,%d", pos+1, end-pos)
}

func splitLines[T string | []byte](in T) []byteview.ByteView {
	return byteview.SplitLines(byteview.From(in))
}

func convertEdit[T string | []byte](e lcs.Edit[byteview.ByteView]) Edit[T] {
	line := e.X
	if e.Op == lcs.Insert {
		line = e.Y
	}
	return Edit[T]{
		Op:      e.Op,
		LineNoX: e.PosX,
		LineNoY: e.PosY,
		Line:    byteview.To[T](line),
	}
}

// writeLine writes a prefixed line and notes a missing newline at the end of the input.
func writeLine[T string | []byte](b *byteview.Builder[T], color, prefix string, line byteview.ByteView) {
	writeColored(b, color, prefix, line.TrimNewline())
	if !line.HasNewline() {
		b.WriteString(missingNewline)
	}
}

func writeColored[T string | []byte](b *byteview.Builder[T], color, prefix string, text byteview.ByteView) {
	if color != "" {
		b.WriteString(color)
	}
	b.WriteString(prefix)
	b.WriteByteView(text)
	if color != "" {
		b.WriteString(config.Reset)
	}
	b.WriteString("\n")
}

// unifiedSize estimates the size of the output without colors.
func unifiedSize(hunks []lcs.Hunk[byteview.ByteView]) int {
	n := 0
	for _, h := range hunks {
		n += len("@@ -0,0 +0,0 @@\n")
		for _, e := range h.Edits {
			n += len(prefixMatch) + max(e.X.Len(), e.Y.Len())
		}
	}
	return n
}
