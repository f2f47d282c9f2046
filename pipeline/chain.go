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

// Package pipeline chains IntCode machines so that the output of each one is
// the input of the next, as done by the amplifier series of 2019 day 7.
//
// Every stage runs its own copy of the same program and receives its phase
// setting as first input. The chain is driven from a single goroutine,
// polling the stages in turn.
package pipeline

import (
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
)

// Chain is a series of machines running the same program.
type Chain struct {
	Stages []*vm.Instance
	// Feedback connects the output of the last stage to the input of the
	// first. Signals then loop through the chain until the first stage halts.
	Feedback bool
	phases   []vm.Word
}

// New returns a new Chain with one stage per phase setting. Each stage runs a
// copy of program, with its phase setting queued as first input.
func New(program []vm.Word, phases []vm.Word, feedback bool) (*Chain, error) {
	if len(phases) == 0 {
		return nil, errors.New("pipeline: no phase settings")
	}
	c := &Chain{
		Stages:   make([]*vm.Instance, len(phases)),
		Feedback: feedback,
		phases:   append([]vm.Word(nil), phases...),
	}
	for k, p := range phases {
		i, err := vm.New(program, vm.Input(p))
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		c.Stages[k] = i
	}
	return c, nil
}

// Phases returns the phase settings of the chain.
func (c *Chain) Phases() []vm.Word {
	return append([]vm.Word(nil), c.phases...)
}

// Reset resets all stages and queues their phase settings again.
func (c *Chain) Reset() {
	for k, i := range c.Stages {
		i.Reset()
		i.PushInput(c.phases[k])
	}
}

// Run sends signal to the first stage and returns the last signal output by
// the last stage.
//
// Without feedback, each stage is run once: it must output a value before
// halting or asking for more input. With feedback, rounds are run until the
// first stage halts at the start of a round.
//
// A stage that halts in the middle of a round yields an UnexpectedHalt
// error.
func (c *Chain) Run(signal vm.Word) (vm.Word, error) {
	for round := 0; ; round++ {
		for k, i := range c.Stages {
			st, v, err := i.RunInput(signal)
			if err != nil {
				return 0, errors.Wrapf(err, "stage %d, round %d", k, round)
			}
			if st == vm.Halted {
				if k == 0 && round > 0 {
					log.Debugf("phases %v: halted after %d rounds, signal %d", c.phases, round, signal)
					return signal, nil
				}
				return 0, errors.Wrapf(&vm.Error{Kind: vm.UnexpectedHalt, PC: i.PC}, "stage %d, round %d", k, round)
			}
			i.ReadOutput()
			log.Tracef("phases %v: stage %d, round %d: %d -> %d", c.phases, k, round, signal, v)
			signal = v
		}
		if !c.Feedback {
			return signal, nil
		}
	}
}
