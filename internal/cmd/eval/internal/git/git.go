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

// Package git reads file changes from the history of a git repository using the git command line
// tool.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// nullID is the blob id git reports for the missing side of an added or deleted file.
const nullID = "0000000000000000000000000000000000000000"

type Repo struct {
	dir string
}

// Open checks that dir is a git repository.
func Open(ctx context.Context, dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	r := &Repo{dir: dir}
	if _, err := r.git(ctx, "rev-parse", "--git-dir"); err != nil {
		return nil, err
	}
	return r, nil
}

// RevList returns the ids of all non-merge commits reachable from HEAD.
func (r *Repo) RevList(ctx context.Context) ([]string, error) {
	out, err := r.git(ctx, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// FileChange is a file modified by a commit.
type FileChange struct {
	Name  string
	OldID string
	NewID string
}

// DiffTree returns the files changed by commit.
func (r *Repo) DiffTree(ctx context.Context, commit string) ([]FileChange, error) {
	out, err := r.git(ctx, "diff-tree", "-r", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	return parseDiffTree(out)
}

// ReadBlob returns the contents of a blob. The null id reads as an empty file.
func (r *Repo) ReadBlob(ctx context.Context, id string) (string, error) {
	if id == nullID {
		return "", nil
	}
	return r.git(ctx, "cat-file", "blob", id)
}

// parseDiffTree parses the raw output format of git diff-tree:
//
//	:100644 100644 <old id> <new id> M\t<name>
func parseDiffTree(out string) ([]FileChange, error) {
	var changes []FileChange
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		meta, name, ok := strings.Cut(line, "\t")
		if !ok || !strings.HasPrefix(meta, ":") {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		fields := strings.Fields(meta[1:])
		if len(fields) != 5 {
			return nil, fmt.Errorf("malformed diff-tree line, found %d fields: %q", len(fields), line)
		}
		changes = append(changes, FileChange{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return changes, nil
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr strings.Builder
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", r.dir}, args...)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git %s: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
