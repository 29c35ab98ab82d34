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

// Package hwy holds the element constraints and runtime target detection
// shared by the selsort packages.
//
// Scans over integer slices walk the data in blocks sized to the detected
// vector width and finish with a scalar tail:
//
//	import "github.com/ajroetker/selsort/hwy"
//
//	hwy.ProcessWithTail[int64](len(data),
//	    func(offset int) { /* data[offset : offset+hwy.MaxLanes[int64]()] */ },
//	    func(offset, count int) { /* data[offset : offset+count] */ },
//	)
package hwy

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all fixed-width integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in a vector lane.
// Only integer lanes are supported.
type Lanes interface {
	Integers
}
