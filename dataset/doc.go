// Package dataset loads MNIST-style datasets: four IDX files (train images,
// train labels, test images, test labels) that are fetched from a remote
// location, decompressed next to the download and decoded with package idx.
//
// Basic usage:
//
//	ds, err := dataset.Load(ctx,
//		dataset.WithDir("./datasets"),
//		dataset.WithSources(dataset.FashionMNIST()),
//	)
//	if err != nil {
//		return err
//	}
//	defer ds.Close()
//
//	img, label, ok := ds.Train().Sample(0)
//
// Load is idempotent on disk. A second run finds the compressed and the
// decompressed files in place and only decodes them.
package dataset
