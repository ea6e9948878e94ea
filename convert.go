package rlevec

import "iter"

// FromSlice builds a vector from a flat slice in a single left-to-right
// coalescing pass: consecutive equal input values become one run. O(n)
// in the input length, with one append per resulting run.
func FromSlice[T comparable](values []T) *Vec[T] {
	v := New[T]()
	if len(values) == 0 {
		return v
	}
	cur := values[0]
	count := 1
	for _, x := range values[1:] {
		if x == cur {
			count++
			continue
		}
		v.PushN(cur, count)
		cur, count = x, 1
	}
	v.PushN(cur, count)
	return v
}

// Collect builds a vector from an arbitrary sequence, coalescing
// consecutive equal values.
func Collect[T comparable](seq iter.Seq[T]) *Vec[T] {
	v := New[T]()
	for x := range seq {
		v.Push(x)
	}
	return v
}

// ToSlice expands the vector back into a flat slice. O(n) in the logical
// length; this and AppendTo are the only operations expected to do
// length-proportional work.
func (v *Vec[T]) ToSlice() []T {
	return v.AppendTo(make([]T, 0, v.Len()))
}

// AppendTo appends the expanded values to dst and returns the extended
// slice.
func (v *Vec[T]) AppendTo(dst []T) []T {
	start := 0
	for _, r := range v.runs {
		for i := start; i <= r.end; i++ {
			dst = append(dst, r.value)
		}
		start = r.end + 1
	}
	return dst
}
