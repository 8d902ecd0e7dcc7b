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

package main

import (
	"context"
	"fmt"
	"slices"

	"cloudeng.io/errors"
	"znkr.io/lcs"
	"znkr.io/lcs/internal/pairset"
	"znkr.io/lcs/internal/unixpatch"
	"znkr.io/lcs/textdiff"
)

// checkEngine validates the relationships between the queries of a single engine. Enumerating all
// subsequences is optional, it is exponential in the worst case.
func checkEngine[T comparable](x, y []T, all bool) error {
	var errs errors.M
	s := lcs.New(x, y)

	best := s.Best()
	if len(best) != s.Len() {
		errs.Append(fmt.Errorf("len(Best()) = %d, Len() = %d", len(best), s.Len()))
	}
	if !slices.Equal(s.X(best), s.Y(best)) {
		errs.Append(fmt.Errorf("Best() pairs different elements"))
	}
	for k := 1; k < len(best); k++ {
		if best[k-1].X >= best[k].X || best[k-1].Y >= best[k].Y {
			errs.Append(fmt.Errorf("Best() is not strictly increasing at %d", k))
			break
		}
	}

	var rx, ry, matched []T
	for _, e := range s.Diff() {
		switch e.Op {
		case lcs.Match:
			rx, ry, matched = append(rx, e.X), append(ry, e.Y), append(matched, e.X)
		case lcs.Delete:
			rx = append(rx, e.X)
		case lcs.Insert:
			ry = append(ry, e.Y)
		}
	}
	if !slices.Equal(rx, x) {
		errs.Append(fmt.Errorf("Diff() does not reconstruct x"))
	}
	if !slices.Equal(ry, y) {
		errs.Append(fmt.Errorf("Diff() does not reconstruct y"))
	}
	if !slices.Equal(matched, s.X(best)) {
		errs.Append(fmt.Errorf("Diff() matches differ from Best()"))
	}

	if all {
		var seen pairset.Set
		for p := range s.AllSeq() {
			if len(p) != s.Len() {
				errs.Append(fmt.Errorf("AllSeq() yielded %d pairs, Len() = %d", len(p), s.Len()))
			}
			if !slices.Equal(s.X(p), s.Y(p)) {
				errs.Append(fmt.Errorf("AllSeq() yielded pairs of different elements: %v", p))
			}
			if !seen.Add(p) {
				errs.Append(fmt.Errorf("AllSeq() yielded %v twice", p))
			}
		}
		if !seen.Contains(best) {
			errs.Append(fmt.Errorf("Best() = %v is not yielded by AllSeq()", best))
		}
	}
	return errs.Err()
}

// checkSubstring validates the longest common substring of x and y.
func checkSubstring[T comparable](x, y []T) error {
	s := lcs.NewSubstring(x, y)
	if !slices.Equal(s.X(), s.Y()) {
		return fmt.Errorf("substring X() = %v and Y() = %v differ", s.X(), s.Y())
	}
	if len(s.X()) != s.Len() {
		return fmt.Errorf("len(X()) = %d, Len() = %d", len(s.X()), s.Len())
	}
	if s.Len() > lcs.New(x, y).Len() {
		return fmt.Errorf("substring is longer than the longest common subsequence")
	}
	return nil
}

// checkPatch applies the unified diff of x and y to x and compares the result with y.
func checkPatch(ctx context.Context, x, y string) error {
	unified := textdiff.Unified(x, y)
	patched, err := unixpatch.Patch(ctx, x, unified)
	if err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}
	if patched != y {
		return fmt.Errorf("file is different after applying patch:\n%s", unified)
	}
	return nil
}
