// Package hashtable implements a separate-chaining hash table that grows to
// the next prime size whenever it holds more entries than slots.
package hashtable

import "github.com/rs/zerolog/log"

// DefaultSize is the slot count requested when callers have no better estimate.
const DefaultSize = 27

// Key is anything a Table can index. Hash must be a pure function of the
// key's value, so that keys equal under == always hash alike. It may be negative.
type Key interface {
	comparable
	Hash() int
}

type entry[K Key, V any] struct {
	key   K
	value V
}

type bucket[K Key, V any] []entry[K, V]

// Table maps keys to values. A key is stored at most once: the first Put for
// a key wins and later ones are ignored. Not safe for concurrent use.
type Table[K Key, V any] struct {
	buckets    []bucket[K, V]
	entries    int
	collisions int
}

// New returns an empty table with NextPrime(size) slots. Sizes below 2 are
// raised to 2.
func New[K Key, V any](size int) *Table[K, V] {
	if size < 2 {
		size = 2
	}
	return &Table[K, V]{buckets: make([]bucket[K, V], NextPrime(size))}
}

// Get returns the value stored for key, or false if there is none.
func (t *Table[K, V]) Get(key K) (V, bool) {
	for _, e := range t.buckets[t.index(key)] {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

func (t *Table[K, V]) ContainsKey(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put stores value under key unless key is already present. An insertion into
// a bucket that already holds an entry counts as one collision. If the table
// then holds more entries than slots, it grows.
func (t *Table[K, V]) Put(key K, value V) {
	i := t.index(key)
	b := t.buckets[i]
	for _, e := range b {
		if e.key == key {
			return
		}
	}

	if len(b) > 0 {
		t.collisions++
	}
	t.buckets[i] = append(b, entry[K, V]{key: key, value: value})
	t.entries++

	if t.entries > len(t.buckets) {
		t.resize()
	}
}

// resize moves every entry into a table of NextPrime(2*slots) slots. Counters
// restart from zero and are rebuilt by re-inserting through Put.
func (t *Table[K, V]) resize() {
	old := t.buckets
	t.buckets = make([]bucket[K, V], NextPrime(2*len(old)))
	t.entries = 0
	t.collisions = 0

	for _, b := range old {
		for _, e := range b {
			t.Put(e.key, e.value)
		}
	}

	log.Debug().
		Int("from", len(old)).
		Int("to", len(t.buckets)).
		Int("entries", t.entries).
		Int("collisions", t.collisions).
		Msg("resized table")
}

// index maps key to a bucket in [0, NumSlots()).
func (t *Table[K, V]) index(key K) int {
	n := len(t.buckets)
	i := key.Hash() % n
	if i < 0 {
		i += n
	}
	return i
}

// Range calls fn for every entry in bucket order until fn returns false.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) {
	for _, b := range t.buckets {
		for _, e := range b {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

func (t *Table[K, V]) NumSlots() int      { return len(t.buckets) }
func (t *Table[K, V]) NumEntries() int    { return t.entries }
func (t *Table[K, V]) NumCollisions() int { return t.collisions }

// LoadFactor returns entries per slot.
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.entries) / float64(len(t.buckets))
}
