package boxes

import (
	"encoding/binary"
	"fmt"

	"hashbox/lib/hash"
	"hashbox/lib/step"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/mo"
)

/*
	Table is a fixed array of 256 buckets. A label always lives in the bucket
	given by hash.Sum(label) and keeps the position it was first inserted at
	until it is removed. The number of buckets never changes, so there is no
	resizing and no rehashing.

	Table is not safe for concurrent mutation.
*/
type Table struct {
	buckets [hash.NumBuckets]bucket
	stats   Stats
}

func New() *Table {
	return &Table{}
}

// Upsert sets the focal value of label, appending it to the end of its bucket
// if it is not there yet.
func (t *Table) Upsert(label string, value uint64) {
	if t.buckets[hash.Sum(label)].upsert(label, value) {
		t.stats.Updates.Inc()
	} else {
		t.stats.Inserts.Inc()
	}
}

// Remove deletes label from its bucket. Removing an absent label is a no-op.
func (t *Table) Remove(label string) {
	if t.buckets[hash.Sum(label)].remove(label) {
		t.stats.Removes.Inc()
	} else {
		t.stats.RemoveMisses.Inc()
	}
}

// Apply dispatches a parsed step to Upsert or Remove
func (t *Table) Apply(s step.Step) {
	switch s.Kind {
	case step.Upsert:
		t.Upsert(s.Label, s.Value)
	case step.Remove:
		t.Remove(s.Label)
	default:
		panic(fmt.Sprintf("boxes: unknown step kind %v", s.Kind))
	}
}

func (t *Table) Get(label string) mo.Option[uint64] {
	if v, ok := t.buckets[hash.Sum(label)].get(label); ok {
		return mo.Some(v)
	}
	return mo.None[uint64]()
}

// Power is the sum over every entry of (bucket index + 1) * (position + 1) * value
func (t *Table) Power() uint64 {
	var power uint64
	for i := range t.buckets {
		for j, e := range t.buckets[i] {
			power += uint64(i+1) * uint64(j+1) * e.Value
		}
	}
	return power
}

// Len returns the number of entries across all buckets
func (t *Table) Len() int {
	n := 0
	for i := range t.buckets {
		n += len(t.buckets[i])
	}
	return n
}

// Bucket returns a copy of the entries of bucket i in order
func (t *Table) Bucket(i uint8) []Entry {
	b := t.buckets[i]
	ret := make([]Entry, len(b))
	copy(ret, b)
	return ret
}

// Digest hashes the full contents of the table, including bucket index and
// position of every entry. Tables with equal contents have equal digests.
func (t *Table) Digest() uint64 {
	d := xxhash.New()
	var buf [binary.MaxVarintLen64]byte
	for i := range t.buckets {
		b := t.buckets[i]
		if len(b) == 0 {
			continue
		}
		d.Write(buf[:binary.PutUvarint(buf[:], uint64(i))])
		d.Write(buf[:binary.PutUvarint(buf[:], uint64(len(b)))])
		for _, e := range b {
			d.Write(buf[:binary.PutUvarint(buf[:], uint64(len(e.Label)))])
			d.WriteString(e.Label)
			d.Write(buf[:binary.PutUvarint(buf[:], e.Value)])
		}
	}
	return d.Sum64()
}

func (t *Table) Stats() StatsSnapshot {
	return t.stats.Snapshot()
}
