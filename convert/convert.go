// Package convert turns raw IDX payloads into numeric containers for model
// code: gonum float64 matrices, blas32 float32 matrices and standardized
// float32 slices.
//
// All functions copy; the input buffers stay untouched.
package convert

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"
)

// ErrShape is returned when a buffer cannot be split into whole samples.
var ErrShape = errors.New("buffer does not match sample shape")

// stdEpsilon keeps the standard deviation of a constant buffer non-zero.
const stdEpsilon = 1e-5

func sampleRows(batch []byte, sampleSize int) (int, error) {
	if sampleSize <= 0 {
		return 0, fmt.Errorf("%w: sample size %d", ErrShape, sampleSize)
	}
	if len(batch) == 0 || len(batch)%sampleSize != 0 {
		return 0, fmt.Errorf("%w: %d bytes is not a positive multiple of %d", ErrShape, len(batch), sampleSize)
	}

	return len(batch) / sampleSize, nil
}

// ImagesToDense converts a packed image batch to a matrix with one row per
// image and pixels scaled to [0,1].
func ImagesToDense(batch []byte, imageSize int) (*mat.Dense, error) {
	rows, err := sampleRows(batch, imageSize)
	if err != nil {
		return nil, err
	}

	data := make([]float64, len(batch))
	for i, b := range batch {
		data[i] = float64(b) / 255
	}

	return mat.NewDense(rows, imageSize, data), nil
}

// ImagesToGeneral32 is ImagesToDense for float32 BLAS consumers.
func ImagesToGeneral32(batch []byte, imageSize int) (blas32.General, error) {
	rows, err := sampleRows(batch, imageSize)
	if err != nil {
		return blas32.General{}, err
	}

	data := make([]float32, len(batch))
	for i, b := range batch {
		data[i] = float32(b) / 255
	}

	return blas32.General{Rows: rows, Cols: imageSize, Stride: imageSize, Data: data}, nil
}

// LabelsToOneHot encodes labels as rows of a len(labels) x classes matrix.
// Labels must be smaller than classes.
func LabelsToOneHot(labels []byte, classes int) (*mat.Dense, error) {
	if len(labels) == 0 || classes <= 0 {
		return nil, fmt.Errorf("%w: %d labels, %d classes", ErrShape, len(labels), classes)
	}

	m := mat.NewDense(len(labels), classes, nil)
	for i, label := range labels {
		if int(label) >= classes {
			return nil, fmt.Errorf("%w: label %d at %d exceeds %d classes", ErrShape, label, i, classes)
		}
		m.Set(i, int(label), 1)
	}

	return m, nil
}

// Stats32 returns the mean and standard deviation of raw byte values.
// The deviation includes a small epsilon so it is never zero.
func Stats32(raw []byte) (mean, std float32) {
	if len(raw) == 0 {
		return 0, math32.Sqrt(stdEpsilon)
	}

	var sum float64
	for _, b := range raw {
		sum += float64(b)
	}
	n := float64(len(raw))
	m := sum / n

	var sq float64
	for _, b := range raw {
		d := float64(b) - m
		sq += d * d
	}

	return float32(m), math32.Sqrt(float32(sq/n) + stdEpsilon)
}

// Standardize32 returns (raw[i]-mean)/std for every byte.
func Standardize32(raw []byte, mean, std float32) []float32 {
	z := make([]float32, len(raw))
	for i, b := range raw {
		z[i] = (float32(b) - mean) / std
	}

	return z
}
