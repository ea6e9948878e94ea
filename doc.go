/*
Package rlevec implements a run-length-encoded vector: an indexable,
mutable, growable sequence that stores each maximal stretch of equal
values once, as the value plus the cumulative index of the stretch's
last element.

If your data consists of long stretches of identical values, storing
only the distinct values and their repeat counts can save a lot of
space. The cost is indexing: reading an arbitrary position requires a
binary search over the stored runs, O(log r) where r is the number of
runs, versus O(1) for a plain slice. All structural mutations (Set,
Insert, Remove) are bounded by the run count, never by the logical
length.

	operation             complexity
	Push                  O(1) amortized
	Get                   O(log r)
	Set (no run break)    O(log r)
	Set (run break)       O(log r + r)
	Insert                O(log r + r)
	Remove                O(log r + r)

# Iteration

Iter returns a double-ended, exact-size cursor that skips whole runs
when asked to jump ahead, so Skip(n) is O(log r) regardless of n.
Values and Runs provide range-over-func views. An iterator must not be
used concurrently with, or after, a mutation of its source vector;
this is not checked at runtime.

# Persistence

Store keeps named vectors in a Bolt database, encoded via msgpack as
(value, run length) pairs. The encoding is the natural external form
of the structure and works for any value type msgpack can encode.
*/
package rlevec
