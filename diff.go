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

package lcs

import "slices"

// LCS returns the elements of x that form the longest common subsequence of x and y picked by
// [Subsequence.Best].
func LCS[T comparable](x, y []T) []T {
	s := New(x, y)
	return s.X(s.Best())
}

// Edits compares the contents of x and y and returns the changes necessary to convert from one to
// the other. See [Subsequence.Diff] for details.
func Edits[T comparable](x, y []T) []Edit[T] {
	return New(x, y).Diff()
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other. See [Subsequence.Diff] for details.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	return NewFunc(x, y, eq).Diff()
}

// Hunks compares the contents of x and y and returns the changes necessary to convert from one to
// the other, grouped into hunks. See [Subsequence.Hunks] for details.
//
// The following option is supported: [lcs.Context]
func Hunks[T comparable](x, y []T, opts ...Option) []Hunk[T] {
	return New(x, y).Hunks(opts...)
}

// HunksFunc compares the contents of x and y using the provided equality comparison and returns the
// changes necessary to convert from one to the other, grouped into hunks. See [Subsequence.Hunks]
// for details.
//
// The following option is supported: [lcs.Context]
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Hunk[T] {
	return NewFunc(x, y, eq).Hunks(opts...)
}

// hunks groups edits as returned by [Subsequence.Diff] into hunks. Every run of changes gets up to
// context matches before and after it, runs separated by at most 2*context matches share a hunk.
//
// The hunks alias edits. Within every run of changes, edits is reordered so that deletions come
// before insertions.
func hunks[T any](edits []Edit[T], context int) []Hunk[T] {
	var out []Hunk[T]
	lo := -1       // index of the first edit of the open hunk, -1 if no hunk is open
	var x0, y0 int // positions in x and y at edits[lo]
	var x, y int   // positions in x and y at edits[k]
	matches := 0   // length of the run of matches before edits[k]
	for k := 0; k < len(edits); {
		if edits[k].Op == Match {
			end := k
			for end < len(edits) && edits[end].Op == Match {
				end++
			}
			matches = end - k
			if lo >= 0 && (matches > 2*context || end == len(edits)) {
				trail := min(matches, context)
				out = append(out, Hunk[T]{
					PosX:  x0,
					EndX:  x + trail,
					PosY:  y0,
					EndY:  y + trail,
					Edits: slices.Clip(edits[lo : k+trail]),
				})
				lo = -1
			}
			x, y, k = x+matches, y+matches, end
			continue
		}

		if lo < 0 {
			lead := min(matches, context)
			lo, x0, y0 = k-lead, x-lead, y-lead
		}
		end := k
		for end < len(edits) && edits[end].Op != Match {
			if edits[end].Op == Delete {
				x++
			} else {
				y++
			}
			end++
		}
		slices.SortStableFunc(edits[k:end], deletesFirst)
		k = end
	}
	if lo >= 0 {
		out = append(out, Hunk[T]{PosX: x0, EndX: x, PosY: y0, EndY: y, Edits: edits[lo:]})
	}
	return out
}

func deletesFirst[T any](a, b Edit[T]) int {
	switch {
	case a.Op == b.Op:
		return 0
	case a.Op == Delete:
		return -1
	default:
		return 1
	}
}
