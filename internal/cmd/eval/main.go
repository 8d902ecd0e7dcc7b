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

// eval validates the LCS engine at scale. It checks that the queries of the engine agree with each
// other on random inputs or on the file changes in the history of a git repository. Optionally,
// unified diffs are applied with the unix patch tool to check that they reproduce the input.
package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"cloudeng.io/errors"
	"golang.org/x/sync/errgroup"
	"znkr.io/lcs/internal/cmd/eval/internal/git"
	"znkr.io/lcs/internal/unixpatch"
)

type config struct {
	repo     string
	sample   int
	maxLines int
	random   int
	maxLen   int
	alphabet int
	seed     string
	parallel int
	validate bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "if set, evaluate the file changes in this git repository instead of random inputs")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.maxLines, "max-lines", 2000, "skip files with more lines than this")
	flag.IntVar(&cfg.random, "random", 100000, "number of random input pairs to evaluate")
	flag.IntVar(&cfg.maxLen, "max-len", 12, "maximum length of random inputs")
	flag.IntVar(&cfg.alphabet, "alphabet", 3, "number of distinct elements in random inputs")
	flag.StringVar(&cfg.seed, "seed", "eval", "seed for random inputs")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.BoolVar(&cfg.validate, "validate", unixpatch.Available(), "if unified diffs should be validated with the patch tool")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}
	if cfg.alphabet < 1 || cfg.alphabet > 26 {
		fmt.Fprintf(os.Stderr, "error: -alphabet must be between 1 and 26, got %d\n", cfg.alphabet)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// input is a pair of texts to compare.
type input struct {
	name string
	x, y string
	// all enables enumerating all longest common subsequences.
	all bool
}

func run(ctx context.Context, cfg *config) error {
	var (
		total    atomic.Int64 // inputs produced so far, or the known total
		done     atomic.Int64 // inputs evaluated
		failures tally
	)

	g, ctx := errgroup.WithContext(ctx)
	inputs := make(chan input)
	notes := make(chan string)

	// Produce inputs.
	g.Go(func() error {
		defer close(inputs)
		if cfg.repo != "" {
			return produceRepo(ctx, cfg, inputs, &total, notes)
		}
		total.Store(int64(cfg.random))
		return produceRandom(ctx, cfg, inputs)
	})

	// Evaluate inputs.
	var workers errgroup.Group
	for range cfg.parallel {
		workers.Go(func() error {
			for in := range inputs {
				if err := evaluate(ctx, cfg, in); err != nil {
					err = fmt.Errorf("%s: %w", in.name, err)
					failures.add(err)
					select {
					case notes <- err.Error():
					case <-ctx.Done():
					}
				}
				done.Add(1)
			}
			return nil
		})
	}
	g.Go(func() error {
		err := workers.Wait()
		close(notes)
		return err
	})

	// Render progress until all workers are done.
	start := time.Now()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	for open := true; open; {
		select {
		case note, ok := <-notes:
			if !ok {
				open = false
				break
			}
			fmt.Printf("\r%s\n", note)
		case <-ticker.C:
		}
		render(done.Load(), total.Load(), time.Since(start))
	}
	fmt.Println()

	if err := g.Wait(); err != nil {
		return err
	}
	return failures.err(done.Load())
}

// tally collects validation failures from concurrent workers.
type tally struct {
	errs errors.M
	n    atomic.Int64
}

func (t *tally) add(err error) {
	t.errs.Append(err)
	t.n.Add(1)
}

// err summarizes the failures out of total evaluated inputs, it's nil if nothing failed.
func (t *tally) err(total int64) error {
	if t.errs.Err() == nil {
		return nil
	}
	return fmt.Errorf("%d of %d inputs failed validation: %w", t.n.Load(), total, t.errs.Err())
}

func evaluate(ctx context.Context, cfg *config, in input) error {
	var errs errors.M
	errs.Append(checkEngine([]byte(in.x), []byte(in.y), in.all))
	errs.Append(checkSubstring([]byte(in.x), []byte(in.y)))
	xlines, ylines := strings.SplitAfter(in.x, "\n"), strings.SplitAfter(in.y, "\n")
	errs.Append(checkEngine(xlines, ylines, in.all))
	if cfg.validate {
		errs.Append(checkPatch(ctx, in.x, in.y))
	}
	return errs.Err()
}

// produceRandom generates random inputs. Every element of the random sequences is also a line, so
// that the same input can be used to check unified output.
func produceRandom(ctx context.Context, cfg *config, inputs chan<- input) error {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(cfg.seed))))
	gen := func() string {
		var sb strings.Builder
		for range rng.IntN(cfg.maxLen + 1) {
			sb.WriteByte(byte('a' + rng.IntN(cfg.alphabet)))
			sb.WriteByte('\n')
		}
		return sb.String()
	}
	for i := range cfg.random {
		in := input{
			name: fmt.Sprintf("random-%d", i),
			x:    gen(),
			y:    gen(),
			all:  true,
		}
		select {
		case inputs <- in:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// produceRepo reads the file changes of (a sample of) all commits in a repository.
func produceRepo(ctx context.Context, cfg *config, inputs chan<- input, total *atomic.Int64, notes chan<- string) error {
	repo, err := git.Open(ctx, cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %w", err)
	}
	commits, err := repo.RevList(ctx)
	if err != nil {
		return fmt.Errorf("reading rev-list: %w", err)
	}
	if cfg.sample > 0 && cfg.sample < len(commits) {
		rand.Shuffle(len(commits), func(i, j int) { commits[i], commits[j] = commits[j], commits[i] })
		commits = commits[:cfg.sample]
	}

	lines := func(s string) int { return strings.Count(s, "\n") + 1 }
	for _, commit := range commits {
		changes, err := repo.DiffTree(ctx, commit)
		if err != nil {
			return fmt.Errorf("reading commit %s: %w", commit, err)
		}
		for _, change := range changes {
			x, err := repo.ReadBlob(ctx, change.OldID)
			if err != nil {
				return err
			}
			y, err := repo.ReadBlob(ctx, change.NewID)
			if err != nil {
				return err
			}
			name := commit + ":" + change.Name
			if lines(x) > cfg.maxLines || lines(y) > cfg.maxLines {
				select {
				case notes <- name + ": skipped, too many lines":
				case <-ctx.Done():
					return ctx.Err()
				}
				continue
			}
			total.Add(1)
			select {
			case inputs <- input{name: name, x: x, y: y}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}

var bars = []string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

func render(done, total int64, elapsed time.Duration) {
	const width = 60
	progress := 0.0
	if total > 0 {
		progress = min(1, float64(done)/float64(total))
	}
	whole := int(progress * width)
	remainder := math.Mod(progress*width, 1)
	last := bars[min(len(bars)-1, int(remainder*float64(len(bars))))]
	if width-whole < 1 {
		last = ""
	}
	bar := strings.Repeat(bars[len(bars)-1], whole) + last
	perSec := 0
	if done > 0 && elapsed > 0 {
		perSec = int(time.Duration(done) * time.Second / elapsed)
	}
	fmt.Printf("\r[%-*s] % 5.1f%% (%d/%d, %d evals/s) ", width, bar, 100*progress, done, total, perSec)
}
