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

// SelectionSortDescending sorts data in-place into non-increasing order and
// returns data for chaining. Empty and single-element slices are returned
// unchanged.
func SelectionSortDescending[T hwy.Lanes](data []T) []T {
	n := len(data)
	if n <= 1 {
		return data
	}

	// data[:i] holds the i largest elements in final order.
	for i := 0; i < n-1; i++ {
		maxIdx := i + MaxIndex(data[i:])
		if maxIdx != i {
			data[i], data[maxIdx] = data[maxIdx], data[i]
		}
	}
	return data
}
