package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/arloliu/idxset/dataset"
	"github.com/arloliu/idxset/idx"
	"github.com/arloliu/idxset/internal/fsutil"
)

// asciiRamp maps pixel intensity to characters, darkest first.
const asciiRamp = " .:-=+*#%@"

// renderASCII writes one image as text, one character per pixel.
func renderASCII(w io.Writer, pixels []byte, width int) error {
	var sb strings.Builder
	for i, p := range pixels {
		sb.WriteByte(asciiRamp[int(p)*(len(asciiRamp)-1)/255])
		if (i+1)%width == 0 {
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// writePNG exports image index of images as an 8-bit grayscale PNG.
func writePNG(path string, images *idx.ImageSet, index uint32) error {
	img, ok := images.Gray(index)
	if !ok {
		return fmt.Errorf("image %d not available (count %d)", index, images.Count())
	}

	return fsutil.WriteAtomic(path, func(f *os.File) error {
		return png.Encode(f, img)
	})
}

// printSummary writes header fields, class counts and checksums of a partition.
func printSummary(w io.Writer, name string, p dataset.Partition) {
	images, labels := p.Images, p.Labels

	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintf(w, "  images: magic=%d count=%d height=%d width=%d bytes=%d checksum=%016x\n",
		images.Magic(), images.Count(), images.Height(), images.Width(), images.Len(), images.Checksum())
	fmt.Fprintf(w, "  labels: magic=%d count=%d bytes=%d checksum=%016x\n",
		labels.Magic(), labels.Count(), labels.Len(), labels.Checksum())

	classes := labels.Classes()
	fmt.Fprintf(w, "  classes:")
	for _, label := range classes.Labels() {
		fmt.Fprintf(w, " %d=%d", label, classes.Count(label))
	}
	fmt.Fprintln(w)
}
