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

package sort

import "github.com/ajroetker/selsort/hwy"

// MaxIndex returns the index of the first occurrence of the largest element
// in data, or -1 if data is empty.
func MaxIndex[T hwy.Lanes](data []T) int {
	n := len(data)
	if n == 0 {
		return -1
	}

	lanes := hwy.MaxLanes[T]()
	maxIdx := 0
	best := data[0]

	hwy.ProcessWithTail[T](n,
		func(offset int) {
			// Reduce the block first; only a strictly larger block max can
			// move the result, so equal values keep the earlier index.
			block := data[offset : offset+lanes]
			blockMax := block[0]
			for _, v := range block[1:] {
				blockMax = max(blockMax, v)
			}
			if blockMax > best {
				best = blockMax
				maxIdx = offset + firstIndexOf(block, blockMax)
			}
		},
		func(offset, count int) {
			for i := offset; i < offset+count; i++ {
				if data[i] > best {
					best = data[i]
					maxIdx = i
				}
			}
		},
	)

	return maxIdx
}

// IsSortedDescending reports whether data is in non-increasing order.
func IsSortedDescending[T hwy.Lanes](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] > data[i-1] {
			return false
		}
	}
	return true
}

func firstIndexOf[T hwy.Lanes](block []T, value T) int {
	for i, v := range block {
		if v == value {
			return i
		}
	}
	return -1
}
