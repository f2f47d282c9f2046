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

package vm

// PushInput appends the given values to the back of the input queue. Values
// are consumed by input instructions in FIFO order.
func (i *Instance) PushInput(v ...Word) {
	i.input = append(i.input, v...)
}

// PendingInput returns the number of queued input values.
func (i *Instance) PendingInput() int {
	return len(i.input)
}

func (i *Instance) popInput() (v Word, ok bool) {
	if len(i.input) == 0 {
		return 0, false
	}
	v, i.input = i.input[0], i.input[1:]
	return v, true
}

func (i *Instance) pushOutput(v Word) {
	i.output = append(i.output, v)
}

// ReadOutput pops the oldest value from the output queue. ok is false if the
// queue is empty.
func (i *Instance) ReadOutput() (v Word, ok bool) {
	if len(i.output) == 0 {
		return 0, false
	}
	v, i.output = i.output[0], i.output[1:]
	return v, true
}

// PendingOutput returns the number of values waiting in the output queue.
func (i *Instance) PendingOutput() int {
	return len(i.output)
}

// DrainOutput empties the output queue and returns its contents in the order
// they were produced. It returns nil if the queue is empty.
func (i *Instance) DrainOutput() []Word {
	if len(i.output) == 0 {
		return nil
	}
	out := i.output
	i.output = nil
	return out
}
