package rlevec

import (
	"errors"
	"os"
	"testing"
)

func setupStore(t testing.TB) (*Store[int], string) {
	t.Helper()

	dbFile, err := os.CreateTemp("", "rlevec_test_*.db")
	ok(t, err)
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	s, err := OpenStore[int](dbFile.Name(), StoreOptions{IsTesting: true})
	ok(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dbFile.Name()
}

func TestStoreRoundTrip(t *testing.T) {
	s, _ := setupStore(t)

	v := FromSlice([]int{0, 0, 0, 1, 1, 1, 1, 2, 2, 3})
	ok(t, s.Put("chrom1", v))

	w, err := s.Get("chrom1")
	ok(t, err)
	checkValid(t, w)
	deepEqual(t, w.ToSlice(), v.ToSlice())
	eq(t, w.RunCount(), v.RunCount())

	// Overwrite.
	ok(t, s.Put("chrom1", FromSlice([]int{9, 9})))
	w, err = s.Get("chrom1")
	ok(t, err)
	deepEqual(t, w.ToSlice(), []int{9, 9})
}

func TestStoreNotFound(t *testing.T) {
	s, _ := setupStore(t)
	_, err := s.Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("** err = %v, wanted ErrNotFound", err)
	}
}

func TestStoreDelete(t *testing.T) {
	s, _ := setupStore(t)
	ok(t, s.Put("a", FromSlice([]int{1, 1})))
	ok(t, s.Delete("a"))
	_, err := s.Get("a")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("** err = %v, wanted ErrNotFound", err)
	}
	ok(t, s.Delete("a")) // deleting a missing key is fine
}

func TestStoreKeys(t *testing.T) {
	s, _ := setupStore(t)
	ok(t, s.Put("b", FromSlice([]int{1})))
	ok(t, s.Put("a", FromSlice([]int{2})))
	ok(t, s.Put("c", New[int]()))

	keys, err := s.Keys()
	ok(t, err)
	deepEqual(t, keys, []string{"a", "b", "c"})
}

func TestStoreEmptyVec(t *testing.T) {
	s, _ := setupStore(t)
	ok(t, s.Put("empty", New[int]()))
	w, err := s.Get("empty")
	ok(t, err)
	eq(t, w.Len(), 0)
	eq(t, w.IsEmpty(), true)
}

func TestStoreReopen(t *testing.T) {
	s, path := setupStore(t)
	ok(t, s.Put("persist", FromSlice([]int{5, 5, 6})))
	ok(t, s.Close())

	s2, err := OpenStore[int](path, StoreOptions{IsTesting: true})
	ok(t, err)
	defer s2.Close()

	w, err := s2.Get("persist")
	ok(t, err)
	deepEqual(t, w.ToSlice(), []int{5, 5, 6})
}
