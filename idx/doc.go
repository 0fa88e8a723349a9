// Package idx decodes IDX label and image files and exposes random-access and
// batch views over the decoded bytes.
//
// # Overview
//
// An IDX file is a fixed big-endian header followed by a flat payload:
//
//	Label file: magic:u32, count:u32                            | count x 1 byte
//	Image file: magic:u32, count:u32, height:u32, width:u32     | count x (height*width) bytes
//
// LabelSet and ImageSet take ownership of the complete file contents at
// construction. Every slice they return is a view into that buffer; nothing is
// copied. Views are capped at their own length, so appending to a returned
// slice reallocates instead of overwriting the neighbouring sample.
//
// # Absence vs. errors
//
// An index at or past Count is normal exhaustion and reports ok == false.
// A buffer shorter than its header is a corrupt input and fails construction
// with errs.ErrInvalidHeaderSize. A label buffer truncated inside the payload
// is a precondition violation: LabelSet.Get panics with Go's bounds check.
// ImageSet.Get is the one accessor that guards against truncation; it logs a
// diagnostic and reports ok == false.
//
// # Batches
//
// GetBatch(index, batchSize) addresses batch number index, starting at item
// index*batchSize. Only index itself is checked against Count. The final batch
// is clamped to the end of the buffer and may be shorter than batchSize.
// A batch that would start at or beyond the end of the buffer reports
// ok == false.
//
//	for b := range labels.Batches(64) {
//	    // b holds up to 64 labels
//	}
//
// # Thread Safety
//
// Buffers are never mutated after construction. Any number of goroutines may
// call the accessors concurrently without synchronization.
package idx
