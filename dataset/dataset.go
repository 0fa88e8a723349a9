package dataset

import (
	"errors"
	"io"
	"sync"

	"github.com/arloliu/idxset/errs"
	"github.com/arloliu/idxset/idx"
	"github.com/arloliu/idxset/internal/hash"
)

// Partition pairs an image file with its label file.
type Partition struct {
	Images *idx.ImageSet
	Labels *idx.LabelSet
}

// Len returns the number of samples present in both files.
func (p Partition) Len() uint32 {
	return min(p.Images.Count(), p.Labels.Count())
}

// Sample returns image index and its label. It reports false when either
// is absent.
func (p Partition) Sample(index uint32) ([]byte, byte, bool) {
	if index >= p.Len() {
		return nil, 0, false
	}

	image, ok := p.Images.Get(index)
	if !ok {
		return nil, 0, false
	}
	label, ok := p.Labels.Get(index)
	if !ok {
		return nil, 0, false
	}

	return image, label, true
}

// Dataset is a loaded train/test pair of partitions. It is immutable and safe
// for concurrent readers.
type Dataset struct {
	name  string
	train Partition
	test  Partition

	closeOnce sync.Once
	closeErr  error
	closers   []io.Closer
}

// Name returns the name of the sources the dataset was loaded from.
func (d *Dataset) Name() string {
	return d.name
}

// Train returns the training partition.
func (d *Dataset) Train() Partition {
	return d.train
}

// Test returns the test partition.
func (d *Dataset) Test() Partition {
	return d.test
}

// Fingerprint combines the checksums of the four buffers. Reloading the same
// files yields the same fingerprint.
func (d *Dataset) Fingerprint() uint64 {
	return hash.Combine(
		d.train.Images.Checksum(),
		d.train.Labels.Checksum(),
		d.test.Images.Checksum(),
		d.test.Labels.Checksum(),
	)
}

// Close releases memory-mapped buffers. Views obtained from the dataset must
// not be used afterwards. Close is a no-op for heap-backed datasets and is
// safe to call more than once.
func (d *Dataset) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = closeAll(d.closers)
		d.closers = nil
	})

	return d.closeErr
}

func closeAll(closers []io.Closer) error {
	var errList []error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && !errors.Is(err, errs.ErrClosed) {
			errList = append(errList, err)
		}
	}

	return errors.Join(errList...)
}
