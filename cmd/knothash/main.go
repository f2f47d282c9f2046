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

// The knothash command prints the knot hash of each of its arguments, or of
// each line read from stdin if there are none.
//
// Usage:
//
//	knothash [flags] [string...]
//
//	    --lengths
//		  treat input as comma separated lengths and print the check value of
//		  a single round
//	    --size n
//		  ring size for --lengths (default 256)
//	    --grid
//		  treat input as a disk key and print the used squares and regions
//		  of its grid
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chuckries/rustvent-of-code-sub001/knothash"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

var (
	lengths bool
	grid    bool
	size    int
)

func parseLengths(s string) ([]int, error) {
	var l []int
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(err, "invalid length")
		}
		l = append(l, n)
	}
	return l, nil
}

func hash(w io.Writer, s string) error {
	switch {
	case lengths:
		l, err := parseLengths(s)
		if err != nil {
			return err
		}
		k, err := knothash.NewKnot(size)
		if err != nil {
			return err
		}
		if err = k.Twist(l); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, k.Check())
		return err
	case grid:
		g := knothash.NewGrid(s)
		_, err := fmt.Fprintln(w, g.Used(), g.Regions())
		return err
	}
	_, err := fmt.Fprintln(w, knothash.String(s))
	return err
}

func run(args []string, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()
	if len(args) > 0 {
		for _, s := range args {
			if err := hash(w, s); err != nil {
				return err
			}
		}
		return errors.Wrap(w.Flush(), "write failed")
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := hash(w, strings.TrimSpace(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read failed")
	}
	return errors.Wrap(w.Flush(), "write failed")
}

func main() {
	flag.BoolVar(&lengths, "lengths", false, "treat input as comma separated lengths and print the check value of a single round")
	flag.IntVar(&size, "size", 256, "ring size for --lengths")
	flag.BoolVar(&grid, "grid", false, "treat input as a disk key and print the used squares and regions of its grid")
	flag.Parse()

	if err := run(flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
