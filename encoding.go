package rlevec

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = (*Vec[int])(nil)
	_ msgpack.CustomDecoder = (*Vec[int])(nil)
)

// EncodeMsgpack encodes the vector as a flat msgpack array of
// alternating value and run-length entries: [v1, n1, v2, n2, ...].
// Expanding each value n times in order reconstructs the sequence, so
// the format is readable without this package.
func (v *Vec[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2 * len(v.runs)); err != nil {
		return err
	}
	start := 0
	for _, r := range v.runs {
		if err := enc.Encode(r.value); err != nil {
			return err
		}
		if err := enc.EncodeInt(int64(r.end - start + 1)); err != nil {
			return err
		}
		start = r.end + 1
	}
	return nil
}

// DecodeMsgpack decodes the EncodeMsgpack format, replacing the vector's
// contents. Adjacent equal values in the input are coalesced, so the
// resulting run table is canonical even for non-minimal input.
func (v *Vec[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 || n%2 != 0 {
		return fmt.Errorf("rlevec: malformed run list: %d entries", n)
	}
	v.runs = v.runs[:0]
	for i := 0; i < n; i += 2 {
		var x T
		if err := dec.Decode(&x); err != nil {
			return err
		}
		count, err := dec.DecodeInt()
		if err != nil {
			return err
		}
		if count < 1 {
			return fmt.Errorf("rlevec: malformed run length %d", count)
		}
		v.PushN(x, count)
	}
	return nil
}
