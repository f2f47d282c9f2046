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

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/chuckries/rustvent-of-code-sub001/ascii"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
)

// errBudget is returned by execute when the step budget is exhausted.
var errBudget = errors.New("step budget exhausted")

// execute runs i in numeric mode: every output value is written to w on a
// line of its own, and whenever the machine needs input, the next line of in
// is parsed as a comma separated list of words.
//
// If maxSteps > 0, execute fails once the machine has executed that many
// instructions.
func execute(i *vm.Instance, maxSteps int64, in ascii.LineReader, w io.Writer) (err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
	}()
	for {
		st, err := i.Step()
		if err != nil {
			return err
		}
		switch st {
		case vm.Produced:
			for _, v := range i.DrainOutput() {
				bw.WriteString(strconv.FormatInt(int64(v), 10))
				bw.WriteByte('\n')
			}
		case vm.NeedsInput:
			if err = bw.Flush(); err != nil {
				return errors.Wrap(err, "write failed")
			}
			s, err := in.ReadLine()
			if err != nil {
				if err == io.EOF {
					return &vm.Error{Kind: vm.InputUnderflow, PC: i.PC}
				}
				return errors.Wrap(err, "read failed")
			}
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			v, err := vm.Parse(strings.NewReader(s))
			if err != nil {
				return err
			}
			i.PushInput(v...)
		case vm.Halted:
			return nil
		}
		if maxSteps > 0 && i.InstructionCount() >= maxSteps {
			return errors.Wrapf(errBudget, "%d instructions @pc=%d", maxSteps, i.PC)
		}
	}
}
