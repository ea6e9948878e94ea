package rlevec

import (
	"slices"
	"sort"
)

// A Vec is a run-length-encoded vector of values of type T. The zero
// value (and New) is an empty vector ready for use.
//
// The backing storage is a single contiguous slice of runs ordered by
// position; each run records its value and the cumulative logical index
// of its last element. Two adjacent runs never hold equal values, so the
// run table is always minimal.
//
// A Vec must not be mutated concurrently with any other access. Wrap it
// in an external lock when sharing across goroutines.
type Vec[T comparable] struct {
	runs []run[T]
}

type run[T comparable] struct {
	value T
	end   int // cumulative logical index of the run's last element, inclusive
}

// New returns an empty vector.
func New[T comparable]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty vector with space preallocated for the
// given number of runs. Note that this is a run count, not a logical
// length; choosing it requires knowledge of how compressible the data is.
func WithCapacity[T comparable](runs int) *Vec[T] {
	return &Vec[T]{runs: make([]run[T], 0, runs)}
}

// Len returns the logical length of the vector, i.e. the number of
// indexable positions. O(1).
func (v *Vec[T]) Len() int {
	if len(v.runs) == 0 {
		return 0
	}
	return v.runs[len(v.runs)-1].end + 1
}

// IsEmpty reports whether the vector holds no values.
func (v *Vec[T]) IsEmpty() bool {
	return len(v.runs) == 0
}

// RunCount returns the number of runs in the backing table.
func (v *Vec[T]) RunCount() int {
	return len(v.runs)
}

// Clear discards all values, keeping the allocated capacity.
func (v *Vec[T]) Clear() {
	v.runs = v.runs[:0]
}

// locate returns the index of the run owning logical position i.
// The caller must ensure 0 <= i < Len().
func (v *Vec[T]) locate(i int) int {
	return sort.Search(len(v.runs), func(p int) bool { return v.runs[p].end >= i })
}

// span returns the owning run of logical position i together with the
// logical start and end positions of that run.
func (v *Vec[T]) span(i int) (p, start, end int) {
	p = v.locate(i)
	if p == 0 {
		return 0, 0, v.runs[0].end
	}
	return p, v.runs[p-1].end + 1, v.runs[p].end
}

// Get returns the value at logical position i, or an error wrapping
// ErrIndexOutOfBounds when i is outside [0, Len()). O(log r).
func (v *Vec[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, indexErr("get", i, v.Len())
	}
	return v.runs[v.locate(i)].value, nil
}

// At returns the value at logical position i, panicking when i is out of
// bounds, the same way a slice index would. Use Get to receive an error
// instead.
func (v *Vec[T]) At(i int) T {
	x, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Push appends a single value. When the value equals the last run's, the
// run is extended in place; otherwise a new unit-length run is appended.
// Amortized O(1).
func (v *Vec[T]) Push(x T) {
	v.PushN(x, 1)
}

// PushN appends n copies of x in O(1). n <= 0 is a no-op.
func (v *Vec[T]) PushN(x T, n int) {
	if n <= 0 {
		return
	}
	if m := len(v.runs); m > 0 {
		if last := &v.runs[m-1]; last.value == x {
			last.end += n
			return
		}
		v.runs = append(v.runs, run[T]{x, v.runs[m-1].end + n})
		return
	}
	v.runs = append(v.runs, run[T]{x, n - 1})
}

// Set replaces the value at logical position i. Replacing the sole
// element of a unit-length run, or splitting a longer run, may merge the
// position into equal-valued neighbors on either side, so the run count
// can shrink by up to 2 or grow by up to 2. O(log r) when no run breaks,
// O(log r + r) otherwise.
func (v *Vec[T]) Set(i int, x T) error {
	if i < 0 || i >= v.Len() {
		return indexErr("set", i, v.Len())
	}
	p, start, end := v.span(i)
	if v.runs[p].value == x {
		return nil
	}

	if start == end {
		// Unit run: fold into the left neighbor if it matches, then into
		// the right one; when both match the two neighbors collapse into
		// a single run.
		if p > 0 && v.runs[p-1].value == x {
			v.runs[p-1].end++
			v.runs = slices.Delete(v.runs, p, p+1)
			p--
			if p+1 < len(v.runs) && v.runs[p+1].value == x {
				v.runs = slices.Delete(v.runs, p, p+1)
			}
			return nil
		}
		if p+1 < len(v.runs) && v.runs[p+1].value == x {
			// The right neighbor's span now starts one position earlier.
			v.runs = slices.Delete(v.runs, p, p+1)
			return nil
		}
		v.runs[p].value = x
		return nil
	}

	switch {
	case i == start:
		if p > 0 && v.runs[p-1].value == x {
			v.runs[p-1].end++
		} else {
			v.runs = slices.Insert(v.runs, p, run[T]{x, i})
		}
	case i == end:
		v.runs[p].end--
		if p+1 == len(v.runs) || v.runs[p+1].value != x {
			v.runs = slices.Insert(v.runs, p+1, run[T]{x, i})
		}
		// Otherwise the freed position is absorbed by the right neighbor.
	default:
		old := v.runs[p].value
		v.runs[p].end = i - 1
		v.runs = slices.Insert(v.runs, p+1, run[T]{x, i}, run[T]{old, end})
	}
	return nil
}

// Insert inserts x at logical position i, shifting everything after it
// one position to the right. i may equal Len(), in which case Insert
// behaves as Push. O(log r + r): every run boundary after i moves.
func (v *Vec[T]) Insert(i int, x T) error {
	n := v.Len()
	if i < 0 || i > n {
		return indexErr("insert", i, n)
	}
	if i == n {
		v.Push(x)
		return nil
	}

	p, start, _ := v.span(i)
	for q := p; q < len(v.runs); q++ {
		v.runs[q].end++
	}
	if v.runs[p].value == x {
		// The owning run simply grew by one.
		return nil
	}
	if i == start {
		if p > 0 && v.runs[p-1].value == x {
			v.runs[p-1].end++
			return nil
		}
		v.runs = slices.Insert(v.runs, p, run[T]{x, i})
		return nil
	}
	old := v.runs[p].value
	end := v.runs[p].end
	v.runs[p].end = i - 1
	v.runs = slices.Insert(v.runs, p+1, run[T]{x, i}, run[T]{old, end})
	return nil
}

// Remove deletes and returns the value at logical position i, shifting
// everything after it one position to the left. Deleting the sole
// element of a unit-length run may rejoin the two runs it used to
// separate, dropping the run count by 2. O(log r + r).
func (v *Vec[T]) Remove(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		var zero T
		return zero, indexErr("remove", i, v.Len())
	}
	p, start, end := v.span(i)
	x := v.runs[p].value
	if start < end {
		for q := p; q < len(v.runs); q++ {
			v.runs[q].end--
		}
		return x, nil
	}

	// Unit run: drop it and close the gap.
	v.runs = slices.Delete(v.runs, p, p+1)
	for q := p; q < len(v.runs); q++ {
		v.runs[q].end--
	}
	if p > 0 && p < len(v.runs) && v.runs[p-1].value == v.runs[p].value {
		// The removed run separated two equal-valued runs; coalesce them.
		v.runs[p-1].end = v.runs[p].end
		v.runs = slices.Delete(v.runs, p, p+1)
	}
	return x, nil
}

// Starts returns the 0-based logical start positions of the runs.
func (v *Vec[T]) Starts() []int {
	if len(v.runs) == 0 {
		return nil
	}
	starts := make([]int, len(v.runs))
	for p := 1; p < len(v.runs); p++ {
		starts[p] = v.runs[p-1].end + 1
	}
	return starts
}

// Ends returns the 0-based logical end positions of the runs.
func (v *Vec[T]) Ends() []int {
	if len(v.runs) == 0 {
		return nil
	}
	ends := make([]int, len(v.runs))
	for p, r := range v.runs {
		ends[p] = r.end
	}
	return ends
}
