package stream

import "github.com/arloliu/fastdata/internal/hash"

// internTable maps previously written strings to their 16-bit reference ids.
//
// Entries are bucketed by xxHash64 of the string value; a bucket holds every
// entry sharing a hash, and lookups verify full string equality, so hash
// collisions cost an extra comparison but can never corrupt the reference
// protocol. Ids are assigned in insertion order starting at 0, and the table
// never holds the sentinel id 65535.
type internTable struct {
	buckets map[uint64][]internEntry
	count   int
}

type internEntry struct {
	value string
	ref   uint16
}

// lookup returns the reference id previously assigned to s.
func (t *internTable) lookup(s string) (uint16, bool) {
	if t.buckets == nil {
		return 0, false
	}

	for _, e := range t.buckets[hash.ID(s)] {
		if e.value == s {
			return e.ref, true
		}
	}

	return 0, false
}

// insert assigns ref to s. The caller guarantees s is not present and that
// ref is below the sentinel value.
func (t *internTable) insert(s string, ref uint16) {
	if t.buckets == nil {
		t.buckets = make(map[uint64][]internEntry)
	}

	h := hash.ID(s)
	t.buckets[h] = append(t.buckets[h], internEntry{value: s, ref: ref})
	t.count++
}

// size returns the number of interned strings.
func (t *internTable) size() int {
	return t.count
}

// reset clears all entries. The bucket map keeps its capacity so a rebound
// writer does not reallocate.
func (t *internTable) reset() {
	for k := range t.buckets {
		delete(t.buckets, k)
	}
	t.count = 0
}
