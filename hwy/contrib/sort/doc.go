// Package sort provides an in-place selection sort that orders integers
// from largest to smallest.
//
// # Algorithm
//
// For each boundary position i, starting at the front, the maximum of the
// unsorted suffix data[i:] is located and swapped into position i. Locating
// the maximum scans the suffix in blocks of hwy.MaxLanes[T]() elements,
// reducing each block to its maximum and only searching inside a block when
// it beats the running maximum. Ties keep the leftmost candidate.
//
// The sort performs O(n²) comparisons and at most n-1 swaps, uses O(1) extra
// space, and is not stable.
//
// # Supported Types
//
// Any fixed-width integer type satisfying hwy.Integers:
//   - int8, int16, int32, int64
//   - uint8, uint16, uint32, uint64
//
// # Example Usage
//
//	import "github.com/ajroetker/selsort/hwy/contrib/sort"
//
//	func Rank(scores []int64) []int64 {
//	    return sort.SelectionSortDescending(scores) // in place, largest first
//	}
package sort
