package idx

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// ClassIndex maps each label value to the set of sample indices carrying it.
//
// It is built once from a LabelSet and is read-only afterwards.
type ClassIndex struct {
	byLabel map[byte]*roaring.Bitmap
	labels  []byte
	total   uint64
}

func newClassIndex(labels []byte) *ClassIndex {
	c := &ClassIndex{byLabel: make(map[byte]*roaring.Bitmap)}
	for i, label := range labels {
		bm, ok := c.byLabel[label]
		if !ok {
			bm = roaring.New()
			c.byLabel[label] = bm
			c.labels = append(c.labels, label)
		}
		bm.Add(uint32(i))
	}

	for _, bm := range c.byLabel {
		bm.RunOptimize()
	}
	slices.Sort(c.labels)
	c.total = uint64(len(labels))

	return c
}

// Labels returns the distinct label values in ascending order.
func (c *ClassIndex) Labels() []byte {
	return slices.Clone(c.labels)
}

// Len returns the number of distinct labels.
func (c *ClassIndex) Len() int {
	return len(c.labels)
}

// Total returns the number of indexed samples.
func (c *ClassIndex) Total() uint64 {
	return c.total
}

// Count returns the number of samples with the given label.
func (c *ClassIndex) Count(label byte) uint64 {
	bm, ok := c.byLabel[label]
	if !ok {
		return 0
	}

	return bm.GetCardinality()
}

// Contains reports whether sample index carries label.
func (c *ClassIndex) Contains(label byte, index uint32) bool {
	bm, ok := c.byLabel[label]

	return ok && bm.Contains(index)
}

// Indices returns a copy of the sample indices carrying label.
// An unknown label yields an empty bitmap.
func (c *ClassIndex) Indices(label byte) *roaring.Bitmap {
	bm, ok := c.byLabel[label]
	if !ok {
		return roaring.New()
	}

	return bm.Clone()
}
