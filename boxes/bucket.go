package boxes

// Entry is a labelled focal value held by a bucket
type Entry struct {
	Label string
	Value uint64
}

// bucket keeps its entries in order of first insertion, at most one per label
type bucket []Entry

func (b bucket) find(label string) int {
	for i := range b {
		if b[i].Label == label {
			return i
		}
	}
	return -1
}

// upsert overwrites the value of label in place or appends a new entry.
// Returns true if an existing entry was updated.
func (b *bucket) upsert(label string, value uint64) bool {
	if i := b.find(label); i >= 0 {
		(*b)[i].Value = value
		return true
	}
	*b = append(*b, Entry{Label: label, Value: value})
	return false
}

// remove deletes label from the bucket, keeping the order of the rest.
// Returns true if the label was present.
func (b *bucket) remove(label string) bool {
	i := b.find(label)
	if i < 0 {
		return false
	}
	copy((*b)[i:], (*b)[i+1:])
	(*b)[len(*b)-1] = Entry{}
	*b = (*b)[:len(*b)-1]
	return true
}

func (b bucket) get(label string) (uint64, bool) {
	if i := b.find(label); i >= 0 {
		return b[i].Value, true
	}
	return 0, false
}
