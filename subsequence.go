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

import "znkr.io/lcs/internal/config"

// Subsequence holds the longest common subsequence table for two slices x and y.
//
// Constructing the table is the expensive part of finding longest common subsequences, every
// query method replays a walk over the same table. The table is never modified after construction,
// so all methods may be called concurrently.
//
// Subsequence borrows x and y for its entire lifetime, they must not be modified while the
// Subsequence is in use.
type Subsequence[T any] struct {
	x, y []T
	eq   func(a, b T) bool
	t    table
}

// New builds the longest common subsequence table for x and y.
func New[T comparable](x, y []T) *Subsequence[T] {
	return NewFunc(x, y, func(a, b T) bool { return a == b })
}

// NewFunc builds the longest common subsequence table for x and y using the provided equality
// comparison.
func NewFunc[T any](x, y []T, eq func(a, b T) bool) *Subsequence[T] {
	return &Subsequence[T]{
		x:  x,
		y:  y,
		eq: eq,
		t:  newTable(x, y, eq),
	}
}

// Len returns the length of the longest common subsequences of x and y.
func (s *Subsequence[T]) Len() int {
	n, m := len(s.x), len(s.y)
	if n == 0 || m == 0 {
		return 0
	}
	return s.t.at(n, m)
}

// Best returns one longest common subsequence of x and y as a sequence of position pairs in
// increasing order.
//
// When two alternatives are equally long, Best drops the element from x (it continues with the
// shorter prefix of x). This rule is part of the API, calling Best repeatedly or on another
// Subsequence for the same input always returns the same pairs.
func (s *Subsequence[T]) Best() []Pair {
	out := make([]Pair, s.Len())
	k := len(out)
	for i, j := len(s.x), len(s.y); i > 0 && j > 0; {
		switch {
		case s.eq(s.x[i-1], s.y[j-1]):
			k--
			out[k] = Pair{X: i - 1, Y: j - 1}
			i--
			j--
		case s.t.at(i, j-1) > s.t.at(i-1, j):
			j--
		default:
			i--
		}
	}
	return out
}

// Diff returns the changes necessary to convert from x to y.
//
// Diff returns one edit for every element in the input slices: every position of x appears in
// exactly one Delete or Match edit and every position of y appears in exactly one Insert or Match
// edit. The matches are exactly the pairs returned by [Subsequence.Best], because Diff breaks ties
// the same way (deleting from x first when walking backwards). As a consequence, a run of changes
// is reported with its insertions before its deletions.
func (s *Subsequence[T]) Diff() []Edit[T] {
	out := make([]Edit[T], len(s.x)+len(s.y)-s.Len())
	k := len(out)
	for i, j := len(s.x), len(s.y); i > 0 || j > 0; {
		k--
		switch {
		case i == 0:
			out[k] = Edit[T]{Op: Insert, PosX: -1, PosY: j - 1, Y: s.y[j-1]}
			j--
		case j == 0:
			out[k] = Edit[T]{Op: Delete, PosX: i - 1, PosY: -1, X: s.x[i-1]}
			i--
		case s.eq(s.x[i-1], s.y[j-1]):
			out[k] = Edit[T]{Op: Match, PosX: i - 1, PosY: j - 1, X: s.x[i-1], Y: s.y[j-1]}
			i--
			j--
		case s.t.at(i, j-1) > s.t.at(i-1, j):
			out[k] = Edit[T]{Op: Insert, PosX: -1, PosY: j - 1, Y: s.y[j-1]}
			j--
		default:
			out[k] = Edit[T]{Op: Delete, PosX: i - 1, PosY: -1, X: s.x[i-1]}
			i--
		}
	}
	return out
}

// Hunks groups the result of [Subsequence.Diff] into hunks. A hunk represents a contiguous block
// of changes (insertions and deletions) along with some surrounding context. The amount of context
// can be configured using [Context].
//
// Within a hunk, a run of changes lists its deletions before its insertions, the way unified diffs
// present them. The matched pairs are the same as the ones of Diff.
//
// If x and y are identical, the output has length zero.
//
// The following option is supported: [lcs.Context]
func (s *Subsequence[T]) Hunks(opts ...Option) []Hunk[T] {
	cfg := config.FromOptions(opts, config.Context)
	return hunks(s.Diff(), cfg.Context)
}

// X returns the elements of x referenced by p.
func (s *Subsequence[T]) X(p []Pair) []T {
	out := make([]T, len(p))
	for k, q := range p {
		out[k] = s.x[q.X]
	}
	return out
}

// Y returns the elements of y referenced by p.
func (s *Subsequence[T]) Y(p []Pair) []T {
	out := make([]T, len(p))
	for k, q := range p {
		out[k] = s.y[q.Y]
	}
	return out
}

// Matches returns the elements of x and y referenced by p as Match edits.
func (s *Subsequence[T]) Matches(p []Pair) []Edit[T] {
	out := make([]Edit[T], len(p))
	for k, q := range p {
		out[k] = Edit[T]{Op: Match, PosX: q.X, PosY: q.Y, X: s.x[q.X], Y: s.y[q.Y]}
	}
	return out
}

// table is the (n+1)×(m+1) length table, stored row by row. at(i, j) is the length of the longest
// common subsequence of x[:i] and y[:j]; row 0 and column 0 are zero.
type table struct {
	m       int
	lengths []int
}

func newTable[T any](x, y []T, eq func(a, b T) bool) table {
	n, m := len(x), len(y)
	w := m + 1
	lengths := make([]int, (n+1)*w)
	for i := 1; i <= n; i++ {
		prev, row := lengths[(i-1)*w:i*w], lengths[i*w:(i+1)*w]
		for j := 1; j <= m; j++ {
			if eq(x[i-1], y[j-1]) {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(prev[j], row[j-1])
			}
		}
	}
	return table{m: m, lengths: lengths}
}

func (t *table) at(i, j int) int { return t.lengths[i*(t.m+1)+j] }
