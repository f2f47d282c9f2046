// This file is part of rustvent-of-code - https://github.com/chuckries/rustvent-of-code-sub001
//
// Copyright 2019 The rustvent-of-code Authors
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

package pipeline

import (
	"context"
	"sync"

	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Permutations returns all the permutations of v, in the order generated by
// Heap's algorithm. The first permutation is a copy of v.
func Permutations(v []vm.Word) [][]vm.Word {
	a := append([]vm.Word(nil), v...)
	var res [][]vm.Word
	var gen func(n int)
	gen = func(n int) {
		if n <= 1 {
			res = append(res, append([]vm.Word(nil), a...))
			return
		}
		for k := 0; k < n-1; k++ {
			gen(n - 1)
			if n%2 == 0 {
				a[k], a[n-1] = a[n-1], a[k]
			} else {
				a[0], a[n-1] = a[n-1], a[0]
			}
		}
		gen(n - 1)
	}
	gen(len(a))
	return res
}

// Result is the outcome of a MaxSignal search.
type Result struct {
	Signal vm.Word
	Phases []vm.Word
}

// MaxSignal runs a chain for every permutation of the given phase settings
// and returns the one producing the highest signal, starting from an input
// signal of 0. Ties go to the permutation generated first.
//
// Permutations are evaluated in parallel, using at most limit goroutines, or
// no limit if limit <= 0. The search stops at the first error or when ctx is
// cancelled.
func MaxSignal(ctx context.Context, program, phases []vm.Word, feedback bool, limit int) (Result, error) {
	perms := Permutations(phases)
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	var (
		mu   sync.Mutex
		best Result
		idx  = -1
	)
	for k, p := range perms {
		if ctx.Err() != nil {
			break
		}
		k, p := k, p // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := New(program, p, feedback)
			if err != nil {
				return err
			}
			v, err := c.Run(0)
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			mu.Lock()
			if idx < 0 || v > best.Signal || v == best.Signal && k < idx {
				best, idx = Result{Signal: v, Phases: p}, k
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if idx < 0 {
		return Result{}, errors.Wrap(ctx.Err(), "pipeline: no permutation evaluated")
	}
	log.Debugf("best of %d permutations: %v", len(perms), best)
	return best, nil
}
