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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old")
	newPath := filepath.Join(dir, "new")
	if err := os.WriteFile(oldPath, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(newPath, []byte("a\nB\nc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		env  map[string]string
		old  string
		want string
	}{
		{
			name: "default",
			old:  oldPath,
			want: "diff --git a/file.txt b/file.txt\n" +
				"index 1111111111..2222222222 100644\n" +
				"--- a/file.txt\n" +
				"+++ b/file.txt\n" +
				"@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n",
		},
		{
			name: "no-context",
			env:  map[string]string{"GITDIFF_CONTEXT": "0"},
			old:  oldPath,
			want: "diff --git a/file.txt b/file.txt\n" +
				"index 1111111111..2222222222 100644\n" +
				"--- a/file.txt\n" +
				"+++ b/file.txt\n" +
				"@@ -2,1 +2,1 @@\n-b\n+B\n",
		},
		{
			name: "color",
			env:  map[string]string{"GITDIFF_CONTEXT": "0", "GITDIFF_COLOR": "true"},
			old:  oldPath,
			want: "diff --git a/file.txt b/file.txt\n" +
				"index 1111111111..2222222222 100644\n" +
				"--- a/file.txt\n" +
				"+++ b/file.txt\n" +
				"\033[36m@@ -2,1 +2,1 @@\033[0m\n\033[31m-b\033[0m\n\033[32m+B\033[0m\n",
		},
		{
			name: "new-file",
			old:  "/dev/null",
			want: "diff --git a/file.txt b/file.txt\n" +
				"index 1111111111..2222222222 100644\n" +
				"--- a/file.txt\n" +
				"+++ b/file.txt\n" +
				"@@ -0,0 +1,3 @@\n+a\n+B\n+c\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{
				"gitdiff", "file.txt",
				tt.old, strings.Repeat("1", 40), "100644",
				newPath, strings.Repeat("2", 40), "100644",
			}
			var got strings.Builder
			getenv := func(k string) string { return tt.env[k] }
			if err := run(args, getenv, &got); err != nil {
				t.Fatalf("run(...) failed: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("run(...) wrote:\n%q\nwant:\n%q", got.String(), tt.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{
			name: "too-few-args",
			args: []string{"gitdiff", "file.txt"},
		},
		{
			name: "invalid-context",
			args: []string{"gitdiff", "file.txt", "/dev/null", "0", "100644", "/dev/null", "0", "100644"},
			env:  map[string]string{"GITDIFF_CONTEXT": "many"},
		},
		{
			name: "missing-file",
			args: []string{"gitdiff", "file.txt", "/does/not/exist", "0", "100644", "/dev/null", "0", "100644"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			getenv := func(k string) string { return tt.env[k] }
			if err := run(tt.args, getenv, &out); err == nil {
				t.Errorf("run(...) succeeded, want error")
			}
		})
	}
}
