// Copyright 2025 go-highway Authors
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

package hwy

// ProcessWithTail walks size elements in blocks of MaxLanes[T]().
//
// It calls:
//   - fullFn(offset) for each full block (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of the block width
//
// Blocks are visited in increasing offset order, and the tail comes last.
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()
	if maxLanes <= 0 {
		if size > 0 {
			tailFn(0, size)
		}
		return
	}

	// Process full blocks
	fullVectors := size / maxLanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * maxLanes)
	}

	// Process tail if any
	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}
