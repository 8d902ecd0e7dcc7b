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

// Package color configures the colors of textdiff.TerminalColors. Every option takes SGR
// parameters, e.g. Deletes(1, 31) for bold red deletions.
package color

import (
	"strconv"
	"strings"

	"znkr.io/lcs/internal/config"
)

// Option overrides one of the colors used by textdiff.TerminalColors.
type Option func(*config.ColorConfig)

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified diff.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Matches colors matching lines.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors deleted lines.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted lines.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// format builds an SGR escape sequence. Without parameters, the color is disabled.
func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	codes := make([]string, len(params))
	for i, v := range params {
		codes[i] = strconv.Itoa(v)
	}
	return "\033[" + strings.Join(codes, ";") + "m"
}
