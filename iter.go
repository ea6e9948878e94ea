package rlevec

import (
	"cmp"
	"iter"
	"sort"
)

// An Iter is a double-ended cursor over the logical values of a vector.
// Next consumes from the front, NextBack from the back; the two ends
// share one view and the iterator is exhausted when they cross. The
// remaining size is known exactly at every point.
//
// An Iter borrows the vector's run table. It must not be used after the
// vector is mutated; doing so is undefined.
type Iter[T comparable] struct {
	vec              *Vec[T]
	head, tail       int // logical positions of the next front / next back values
	headRun, tailRun int // runs owning head and tail (stale once exhausted)
}

// Iter returns a cursor positioned at both ends of the vector.
func (v *Vec[T]) Iter() *Iter[T] {
	it := &Iter[T]{vec: v}
	it.Reset()
	return it
}

// Reset rewinds both ends, making the iterator cover the whole vector
// again.
func (it *Iter[T]) Reset() {
	it.head, it.headRun = 0, 0
	it.tail = it.vec.Len() - 1
	it.tailRun = len(it.vec.runs) - 1
}

// Remaining returns the exact number of values left to consume.
func (it *Iter[T]) Remaining() int {
	if it.head > it.tail {
		return 0
	}
	return it.tail - it.head + 1
}

// Next consumes and returns the next value from the front.
func (it *Iter[T]) Next() (T, bool) {
	if it.head > it.tail {
		var zero T
		return zero, false
	}
	runs := it.vec.runs
	x := runs[it.headRun].value
	it.head++
	if it.headRun+1 < len(runs) && it.head > runs[it.headRun].end {
		it.headRun++
	}
	return x, true
}

// NextBack consumes and returns the next value from the back.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.head > it.tail {
		var zero T
		return zero, false
	}
	runs := it.vec.runs
	x := runs[it.tailRun].value
	it.tail--
	if it.tailRun > 0 && it.tail <= runs[it.tailRun-1].end {
		it.tailRun--
	}
	return x, true
}

// Skip advances the front past n values without visiting them. Runs that
// fall entirely inside the skipped range are jumped over via binary
// search, so the cost is O(log r) regardless of n.
func (it *Iter[T]) Skip(n int) {
	if n <= 0 {
		return
	}
	it.head += n
	if it.head > it.tail {
		return
	}
	runs := it.vec.runs
	rel := sort.Search(len(runs)-it.headRun, func(q int) bool {
		return runs[it.headRun+q].end >= it.head
	})
	it.headRun += rel
}

// SkipBack retreats the back past n values without visiting them, with
// the same run-jumping behavior as Skip.
func (it *Iter[T]) SkipBack(n int) {
	if n <= 0 {
		return
	}
	it.tail -= n
	if it.head > it.tail {
		return
	}
	runs := it.vec.runs
	it.tailRun = sort.Search(it.tailRun+1, func(q int) bool {
		return runs[q].end >= it.tail
	})
}

// Nth skips n values and consumes the one after them, so Nth(0) is
// equivalent to Next.
func (it *Iter[T]) Nth(n int) (T, bool) {
	it.Skip(n)
	return it.Next()
}

// Min returns the smallest value still in view without consuming the
// iterator. It compares one value per run, not per logical element: the
// minimum of a multiset equals the minimum of its distinct members.
func Min[T cmp.Ordered](it *Iter[T]) (T, bool) {
	var best T
	if it.head > it.tail {
		return best, false
	}
	runs := it.vec.runs
	best = runs[it.headRun].value
	for p := it.headRun + 1; p <= it.tailRun; p++ {
		if runs[p].value < best {
			best = runs[p].value
		}
	}
	return best, true
}

// Max returns the largest value still in view without consuming the
// iterator, comparing one value per run.
func Max[T cmp.Ordered](it *Iter[T]) (T, bool) {
	var best T
	if it.head > it.tail {
		return best, false
	}
	runs := it.vec.runs
	best = runs[it.headRun].value
	for p := it.headRun + 1; p <= it.tailRun; p++ {
		if runs[p].value > best {
			best = runs[p].value
		}
	}
	return best, true
}

// Values returns a range-over-func view of the logical values in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		start := 0
		for _, r := range v.runs {
			for i := start; i <= r.end; i++ {
				if !yield(r.value) {
					return
				}
			}
			start = r.end + 1
		}
	}
}

// Runs returns a range-over-func view of (value, run length) pairs in
// run order.
func (v *Vec[T]) Runs() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		start := 0
		for _, r := range v.runs {
			if !yield(r.value, r.end-start+1) {
				return
			}
			start = r.end + 1
		}
	}
}
