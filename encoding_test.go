package rlevec

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestMsgpackRoundTrip(t *testing.T) {
	inputs := [][]int{
		nil,
		{42},
		{7, 7, 7, 7},
		{0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 4, 5, 4, 4, 4},
	}
	for _, in := range inputs {
		v := FromSlice(in)
		data, err := msgpack.Marshal(v)
		ok(t, err)

		w := New[int]()
		ok(t, msgpack.Unmarshal(data, w))
		checkValid(t, w)
		deepEqual(t, w.ToSlice(), v.ToSlice())
		eq(t, w.RunCount(), v.RunCount())
	}
}

func TestMsgpackRoundTripStrings(t *testing.T) {
	v := FromSlice([]string{"a", "a", "b", "", ""})
	data, err := msgpack.Marshal(v)
	ok(t, err)

	w := New[string]()
	ok(t, msgpack.Unmarshal(data, w))
	deepEqual(t, w.ToSlice(), []string{"a", "a", "b", "", ""})
}

func TestMsgpackDecodeReplacesContents(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	data, err := msgpack.Marshal(v)
	ok(t, err)

	w := FromSlice([]int{9, 9, 9, 9})
	ok(t, msgpack.Unmarshal(data, w))
	deepEqual(t, w.ToSlice(), []int{1, 2, 3})
}

func TestMsgpackDecodeCoalesces(t *testing.T) {
	// A non-minimal run list (adjacent pairs with equal values) must
	// decode into a canonical table.
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	ok(t, enc.EncodeArrayLen(6))
	for _, n := range []int{1, 2, 1, 3, 2, 1} { // value 1 ×2, value 1 ×3, value 2 ×1
		ok(t, enc.EncodeInt(int64(n)))
	}

	v := New[int]()
	ok(t, msgpack.Unmarshal(buf.Bytes(), v))
	checkValid(t, v)
	eq(t, v.Len(), 6)
	eq(t, v.RunCount(), 2)
	deepEqual(t, v.ToSlice(), []int{1, 1, 1, 1, 1, 2})
}

func TestMsgpackDecodeMalformed(t *testing.T) {
	t.Run("odd entry count", func(t *testing.T) {
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		ok(t, enc.EncodeArrayLen(1))
		ok(t, enc.EncodeInt(5))

		if err := msgpack.Unmarshal(buf.Bytes(), New[int]()); err == nil {
			t.Fatalf("** decoding odd-length run list did not fail")
		}
	})
	t.Run("nonpositive run length", func(t *testing.T) {
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		ok(t, enc.EncodeArrayLen(2))
		ok(t, enc.EncodeInt(5))
		ok(t, enc.EncodeInt(0))

		if err := msgpack.Unmarshal(buf.Bytes(), New[int]()); err == nil {
			t.Fatalf("** decoding zero run length did not fail")
		}
	})
}
