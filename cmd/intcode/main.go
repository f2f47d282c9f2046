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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/chuckries/rustvent-of-code-sub001/ascii"
	"github.com/chuckries/rustvent-of-code-sub001/asm"
	"github.com/chuckries/rustvent-of-code-sub001/script"
	"github.com/chuckries/rustvent-of-code-sub001/vm"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

var (
	asciiMode   bool
	noRawIO     bool
	debug       bool
	dump        bool
	disasm      bool
	outFileName string
	scriptFile  string
	logLevel    string
	maxSteps    int64
	memSize     int
	inputs      wordList
	patches     patchList
	withFiles   fileList
)

// loadProgram reads a program in text form, or assembles it if fileName has a
// .ica extension.
func loadProgram(fileName string) ([]vm.Word, error) {
	if filepath.Ext(fileName) != ".ica" {
		return vm.ReadProgram(fileName)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(fileName, f)
}

func newVM(fileName string, opts ...vm.Option) (*vm.Instance, error) {
	prog, err := loadProgram(fileName)
	if err != nil {
		return nil, err
	}
	return vm.New(prog, opts...)
}

// readLines reads all the lines of the given files.
func readLines(files []string) ([]string, error) {
	var lines []string
	for _, fn := range files {
		f, err := os.Open(fn)
		if err != nil {
			return nil, errors.Wrap(err, "open failed")
		}
		r := ascii.NewLineReader(f)
		for {
			s, err := r.ReadLine()
			if err == io.EOF {
				break
			}
			if err != nil {
				f.Close()
				return nil, errors.Wrap(err, fn)
			}
			lines = append(lines, s)
		}
		f.Close()
	}
	return lines, nil
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		if w, _ := i.Read(vm.Word(i.PC)); i.PC < len(i.Mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), RB: %v, steps: %d\n", i.PC, w, i.RelBase, i.InstructionCount())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, RB: %v, steps: %d\n", i.PC, i.RelBase, i.InstructionCount())
		}
	}
	os.Exit(1)
}

func main() {
	var err error
	var i *vm.Instance

	defer func() {
		if i != nil {
			if err == nil && dump {
				err = i.Dump(os.Stdout)
			}
			if err == nil && outFileName != "" {
				err = vm.Save(outFileName, i.Mem)
			}
		}
		atExit(i, err)
	}()

	flag.CommandLine.SortFlags = false
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] program\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.VarP(&inputs, "input", "i", "queue comma separated `words` as input (can be specified multiple times)")
	flag.VarP(&patches, "patch", "p", "set memory `addr=value` before running (can be specified multiple times)")
	flag.IntVar(&memSize, "size", 0, "pre-allocate memory to `n` words")
	flag.BoolVarP(&asciiMode, "ascii", "a", false, "interactive ASCII mode")
	flag.Var(&withFiles, "with", "in ASCII mode, feed the lines of `filename` before reading stdin (can be specified multiple times)")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO in ASCII mode")
	flag.StringVarP(&scriptFile, "script", "s", "", "drive the machine with Lua script `filename`")
	flag.Int64Var(&maxSteps, "max-steps", 0, "abort after `n` instructions (0 means no limit)")
	flag.BoolVarP(&disasm, "disasm", "d", false, "disassemble the program and exit")
	flag.BoolVar(&dump, "dump", false, "dump the machine state upon exit")
	flag.StringVarP(&outFileName, "output", "o", "", "save memory to `filename` upon exit")
	flag.StringVar(&logLevel, "log-level", "off", "log `level`: trace, debug, info, warn, error, critical or off")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err = setupLogging(os.Stderr, logLevel); err != nil {
		return
	}

	opts := append(patches.options(), vm.MemSize(memSize), vm.Input(inputs...))
	if i, err = newVM(flag.Arg(0), opts...); err != nil {
		return
	}

	if disasm {
		err = asm.DisassembleAll(i.Mem, 0, os.Stdout)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	switch {
	case scriptFile != "":
		r := script.New(i, os.Stdout)
		defer r.Close()
		err = r.RunFile(ctx, scriptFile)
	case asciiMode:
		var c *ascii.Console
		var tearDown func()
		if c, tearDown, err = newConsole(!noRawIO); err != nil {
			return
		}
		defer tearDown()
		if c.Lines, err = readLines(withFiles); err != nil {
			return
		}
		c.Echo = true
		if err = c.Run(i); errors.Cause(err) == io.EOF {
			err = nil
		}
	default:
		err = execute(i, maxSteps, ascii.NewLineReader(os.Stdin), os.Stdout)
	}
}
