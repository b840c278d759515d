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

// Package memory provides the allocators backing the flatbuffers Builder
// arena and the finished buffers it hands out.
package memory

import "unsafe"

const (
	alignment = 64
)

// Allocator hands out the byte slices a Builder grows into.
//
// Reallocate must preserve the first min(len(b), size) bytes of b.
type Allocator interface {
	Allocate(size int) []byte
	Reallocate(size int, b []byte) []byte
	Free(b []byte)
}

// DefaultAllocator is used when no allocator is configured.
var DefaultAllocator Allocator = NewGoAllocator()

func roundUpToMultipleOf64(v int) int {
	return (v + (alignment - 1)) &^ (alignment - 1)
}

func addressOf(b []byte) uintptr {
	if cap(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[:1][0]))
}
