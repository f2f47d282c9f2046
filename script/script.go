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

// Package script drives IntCode machines from Lua scripts.
//
// Scripts load the "intcode" module to access the machine attached to the
// Runner:
//
//	local ic = require("intcode")
//	ic.poke(1, 12)
//	ic.poke(2, 2)
//	ic.run_to_halt()
//	print(ic.peek(0))
//
// Module functions:
//
//	push(v, ...)      queue input values
//	run()             run until the machine suspends; returns the status
//	                  ("needs input", "produced" or "halted") and the value
//	                  produced, if any. That value is popped from the output
//	                  queue, so output() and outputs() will not see it again
//	run_to_halt()     run until halt and return all outputs in a table
//	output()          pop the oldest output value, nil if none
//	outputs()         drain the output queue into a table
//	peek(addr)        read memory
//	poke(addr, v)     write memory
//	write_line(s)     queue s followed by a newline as ASCII input
//	read_line()       read an ASCII line and return its text. A value
//	                  outside the ASCII range is returned followed by the
//	                  text that preceded it. If the machine asks for input
//	                  first, returns nil, "needs input" and the partial
//	                  text, like a prompt. Returns nil and "eof" once the
//	                  machine has halted
//	reset()           reset the machine
//	halted()          true if the machine is halted
//	pc()              current program counter
//
// Lua numbers are float64: values beyond 2^53 lose precision.
package script

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/chuckries/rustvent-of-code-sub001/ascii"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the name scripts require to access the machine.
const ModuleName = "intcode"

// Runner runs Lua scripts against a single machine.
type Runner struct {
	L   *lua.LState
	vm  *vm.Instance
	out io.Writer
	err error // last machine error raised to Lua
}

// New returns a new Runner driving i. The output of the Lua print function
// goes to out.
func New(i *vm.Instance, out io.Writer) *Runner {
	r := &Runner{
		L:   lua.NewState(),
		vm:  i,
		out: out,
	}
	r.L.PreloadModule(ModuleName, r.loader)
	r.L.SetGlobal("print", r.L.NewFunction(r.print))
	return r
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.L.Close()
}

// Run loads and runs the script read from src. name is used in error
// messages.
//
// If the script fails because of a machine error, that error is returned,
// wrapped with the script name.
func (r *Runner) Run(ctx context.Context, name string, src io.Reader) error {
	fn, err := r.L.Load(bufio.NewReader(src), name)
	if err != nil {
		return errors.Wrap(err, "load failed")
	}
	log.Debugf("running script %s", name)
	r.err = nil
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()
	r.L.Push(fn)
	if err = r.L.PCall(0, lua.MultRet, nil); err != nil {
		if r.err != nil {
			return errors.Wrap(r.err, name)
		}
		return errors.Wrap(err, name)
	}
	return nil
}

// RunFile runs the script in file fileName.
func (r *Runner) RunFile(ctx context.Context, fileName string) error {
	f, err := os.Open(fileName)
	if err != nil {
		return errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return r.Run(ctx, fileName, f)
}

func (r *Runner) print(L *lua.LState) int {
	w := bufio.NewWriter(r.out)
	for k := 1; k <= L.GetTop(); k++ {
		if k > 1 {
			w.WriteByte('\t')
		}
		w.WriteString(L.ToStringMeta(L.Get(k)).String())
	}
	w.WriteByte('\n')
	if err := w.Flush(); err != nil {
		L.RaiseError("print: %v", err)
	}
	return 0
}

// raise aborts the running script with a machine error.
func (r *Runner) raise(L *lua.LState, err error) {
	r.err = err
	L.RaiseError("%v", err)
}

func (r *Runner) loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"push":        r.push,
		"run":         r.run,
		"run_to_halt": r.runToHalt,
		"output":      r.output,
		"outputs":     r.outputs,
		"peek":        r.peek,
		"poke":        r.poke,
		"write_line":  r.writeLine,
		"read_line":   r.readLine,
		"reset":       r.reset,
		"halted":      r.halted,
		"pc":          r.pc,
	})
	L.Push(mod)
	return 1
}

func (r *Runner) push(L *lua.LState) int {
	for k := 1; k <= L.GetTop(); k++ {
		r.vm.PushInput(vm.Word(L.CheckInt64(k)))
	}
	return 0
}

func (r *Runner) run(L *lua.LState) int {
	st, v, err := r.vm.Run()
	if err != nil {
		r.raise(L, err)
		return 0
	}
	L.Push(lua.LString(st.String()))
	if st == vm.Produced {
		r.vm.ReadOutput()
		L.Push(lua.LNumber(v))
		return 2
	}
	return 1
}

func (r *Runner) table(L *lua.LState, v []vm.Word) *lua.LTable {
	t := L.CreateTable(len(v), 0)
	for _, w := range v {
		t.Append(lua.LNumber(w))
	}
	return t
}

func (r *Runner) runToHalt(L *lua.LState) int {
	out, err := r.vm.RunToHalt()
	if err != nil {
		r.raise(L, err)
		return 0
	}
	L.Push(r.table(L, out))
	return 1
}

func (r *Runner) output(L *lua.LState) int {
	v, ok := r.vm.ReadOutput()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (r *Runner) outputs(L *lua.LState) int {
	L.Push(r.table(L, r.vm.DrainOutput()))
	return 1
}

func (r *Runner) peek(L *lua.LState) int {
	v, err := r.vm.Read(vm.Word(L.CheckInt64(1)))
	if err != nil {
		r.raise(L, err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (r *Runner) poke(L *lua.LState) int {
	if err := r.vm.Write(vm.Word(L.CheckInt64(1)), vm.Word(L.CheckInt64(2))); err != nil {
		r.raise(L, err)
	}
	return 0
}

func (r *Runner) writeLine(L *lua.LState) int {
	ascii.WriteLine(r.vm, L.CheckString(1))
	return 0
}

func (r *Runner) readLine(L *lua.LState) int {
	l, err := ascii.ReadLine(r.vm)
	switch {
	case err == nil:
		if l.Large {
			L.Push(lua.LNumber(l.Value))
			L.Push(lua.LString(l.Text))
			return 2
		}
		L.Push(lua.LString(l.Text))
		return 1
	case err == ascii.ErrNeedsInput:
		L.Push(lua.LNil)
		L.Push(lua.LString(vm.NeedsInput.String()))
		L.Push(lua.LString(l.Text))
		return 3
	case err == io.EOF:
		L.Push(lua.LNil)
		L.Push(lua.LString("eof"))
		return 2
	}
	if l.Text != "" {
		err = errors.Wrapf(err, "partial line %q", l.Text)
	}
	r.raise(L, err)
	return 0
}

func (r *Runner) reset(L *lua.LState) int {
	r.vm.Reset()
	return 0
}

func (r *Runner) halted(L *lua.LState) int {
	L.Push(lua.LBool(r.vm.Halted()))
	return 1
}

func (r *Runner) pc(L *lua.LState) int {
	L.Push(lua.LNumber(r.vm.PC))
	return 1
}
