// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import "go.uber.org/atomic"

// CheckedAllocator wraps another Allocator and keeps a running count of
// the bytes it has handed out and not yet had freed.
type CheckedAllocator struct {
	mem Allocator
	sz  atomic.Int64
}

func NewCheckedAllocator(mem Allocator) *CheckedAllocator {
	return &CheckedAllocator{mem: mem}
}

// CurrentAlloc reports the number of bytes allocated and not yet freed.
func (a *CheckedAllocator) CurrentAlloc() int { return int(a.sz.Load()) }

func (a *CheckedAllocator) Allocate(size int) []byte {
	a.sz.Add(int64(size))
	return a.mem.Allocate(size)
}

func (a *CheckedAllocator) Reallocate(size int, b []byte) []byte {
	a.sz.Add(int64(size - len(b)))
	return a.mem.Reallocate(size, b)
}

func (a *CheckedAllocator) Free(b []byte) {
	a.sz.Sub(int64(len(b)))
	a.mem.Free(b)
}

// TestingT is the subset of testing.TB used by AssertSize.
type TestingT interface {
	Helper()
	Errorf(format string, args ...interface{})
}

// AssertSize fails t when the outstanding allocation differs from sz.
func (a *CheckedAllocator) AssertSize(t TestingT, sz int) {
	t.Helper()
	if got := a.CurrentAlloc(); got != sz {
		t.Errorf("invalid memory size exp=%d, got=%d", sz, got)
	}
}

var (
	_ Allocator = (*CheckedAllocator)(nil)
)
