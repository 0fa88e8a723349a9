package dataset

import (
	"fmt"
	"strings"

	"github.com/arloliu/idxset/errs"
)

// Standard IDX file names shared by MNIST and Fashion-MNIST.
const (
	TrainImagesFile = "train-images-idx3-ubyte.gz"
	TrainLabelsFile = "train-labels-idx1-ubyte.gz"
	TestImagesFile  = "t10k-images-idx3-ubyte.gz"
	TestLabelsFile  = "t10k-labels-idx1-ubyte.gz"
)

const (
	mnistBaseURL        = "https://storage.googleapis.com/cvdf-datasets/mnist/"
	fashionMNISTBaseURL = "http://fashion-mnist.s3-website.eu-central-1.amazonaws.com/"
)

// Sources describes where the four files of a dataset live.
//
// File names may carry a compression extension (.gz, .zst, .s2, .lz4); the
// decompressed copy drops it. Names without one are used as-is.
type Sources struct {
	Name        string
	BaseURL     string
	TrainImages string
	TrainLabels string
	TestImages  string
	TestLabels  string
}

// MNIST returns the sources of the MNIST handwritten digits.
func MNIST() Sources {
	return Sources{
		Name:        "mnist",
		BaseURL:     mnistBaseURL,
		TrainImages: TrainImagesFile,
		TrainLabels: TrainLabelsFile,
		TestImages:  TestImagesFile,
		TestLabels:  TestLabelsFile,
	}
}

// FashionMNIST returns the sources of Zalando's Fashion-MNIST.
func FashionMNIST() Sources {
	s := MNIST()
	s.Name = "fashion-mnist"
	s.BaseURL = fashionMNISTBaseURL

	return s
}

// ByName returns the built-in sources called name.
func ByName(name string) (Sources, error) {
	switch strings.ToLower(name) {
	case "mnist":
		return MNIST(), nil
	case "fashion-mnist", "fashion":
		return FashionMNIST(), nil
	default:
		return Sources{}, fmt.Errorf("%w: unknown dataset %q", errs.ErrInvalidConfig, name)
	}
}

// WithBaseURL returns a copy of s served from baseURL, e.g. a mirror,
// an s3:// prefix or a file:// directory.
func (s Sources) WithBaseURL(baseURL string) Sources {
	s.BaseURL = baseURL
	return s
}

// URL returns the remote location of file name.
func (s Sources) URL(name string) string {
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + name
}

// Files returns the four file names in train images, train labels,
// test images, test labels order.
func (s Sources) Files() [4]string {
	return [4]string{s.TrainImages, s.TrainLabels, s.TestImages, s.TestLabels}
}

// Validate checks that every location is set and the four names are distinct.
func (s Sources) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("%w: sources %q: empty base URL", errs.ErrInvalidConfig, s.Name)
	}
	seen := make(map[string]struct{}, 4)
	for _, name := range s.Files() {
		if name == "" {
			return fmt.Errorf("%w: sources %q: empty file name", errs.ErrInvalidConfig, s.Name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: sources %q: duplicate file name %q", errs.ErrInvalidConfig, s.Name, name)
		}
		seen[name] = struct{}{}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: sources %q: file name %q must not contain a path", errs.ErrInvalidConfig, s.Name, name)
		}
	}

	return nil
}
