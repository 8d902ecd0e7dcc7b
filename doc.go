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

// Package lcs finds longest common subsequences and longest common substrings of two slices.
//
// The main type is [Subsequence]. It builds the dynamic programming length table for two inputs
// once and then answers queries against it: [Subsequence.Best] returns one longest common
// subsequence, [Subsequence.All] returns every distinct longest common subsequence, and
// [Subsequence.Diff] derives the insertions, deletions, and matches that turn x into y.
//
// Results are expressed as position pairs ([Pair]) rather than values. The same value may occur
// many times in an input and every occurrence is a different element: two subsequences that spell
// the same values using different positions are different subsequences.
//
// Ties between equally long alternatives are always broken the same way: the element of x is
// dropped first. Best and Diff apply this rule identically, so the matches of a diff are exactly the
// pairs returned by Best.
//
// [Substring] finds the longest contiguous run shared by both inputs.
//
// Performance: Building a [Subsequence] takes O(NM) time and space where N = len(x) and M =
// len(y). Best and Diff run in O(N+M). The number of longest common subsequences can grow
// exponentially with the input size (consider two inputs consisting of a handful of repeated
// values), and [Subsequence.All] enumerates all of them without any limit. Bound the input size
// before calling it on untrusted data.
//
// Note: For a line-by-line diff of text, please see [znkr.io/lcs/textdiff].
//
// [znkr.io/lcs/textdiff]: https://pkg.go.dev/znkr.io/lcs/textdiff
package lcs
