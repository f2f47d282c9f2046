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

package ici_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/chuckries/rustvent-of-code-sub001/internal/ici"
	"github.com/pkg/errors"
)

type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, io.ErrShortWrite
	}
	w.n--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	ew := ici.NewErrWriter(&b)
	io.WriteString(ew, "hello ")
	ew.Write([]byte("world"))
	if ew.Err != nil {
		t.Fatalf("unexpected error %v", ew.Err)
	}
	if b.String() != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", b.String())
	}
	if ici.NewErrWriter(ew) != ew {
		t.Fatal("NewErrWriter did not reuse an existing ErrWriter")
	}
}

func TestErrWriter_sticky(t *testing.T) {
	ew := ici.NewErrWriter(&failWriter{n: 1})
	if _, err := ew.Write([]byte("a")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if _, err := ew.Write([]byte("b")); errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected io.ErrShortWrite, got %v", err)
	}
	n, err := ew.Write([]byte("c"))
	if n != 0 || errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected sticky error, got %d, %v", n, err)
	}
}
