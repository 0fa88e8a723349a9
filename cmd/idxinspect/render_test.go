package main

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/idxset/dataset"
	"github.com/arloliu/idxset/idx"
	"github.com/arloliu/idxset/internal/config"
)

func testImages(t *testing.T) *idx.ImageSet {
	t.Helper()

	buf := binary.BigEndian.AppendUint32(nil, 2051)
	buf = binary.BigEndian.AppendUint32(buf, 2)
	buf = binary.BigEndian.AppendUint32(buf, 2) // height
	buf = binary.BigEndian.AppendUint32(buf, 3) // width
	buf = append(buf, 0, 128, 255, 255, 0, 0)
	buf = append(buf, 10, 20, 30, 40, 50, 60)

	images, err := idx.NewImageSet(buf)
	require.NoError(t, err)

	return images
}

func TestRenderASCII(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderASCII(&out, []byte{0, 128, 255, 255, 0, 0}, 3))
	require.Equal(t, " =@\n@  \n", out.String())
}

func TestWritePNG(t *testing.T) {
	images := testImages(t)
	path := filepath.Join(t.TempDir(), "out", "sample.png")

	require.NoError(t, writePNG(path, images, 1))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	r, _, _, _ := img.At(2, 1).RGBA()
	require.Equal(t, uint32(60)*0x101, r)

	require.Error(t, writePNG(path, images, 2))
}

func TestPrintSummary(t *testing.T) {
	labelBuf := binary.BigEndian.AppendUint32(nil, 2049)
	labelBuf = binary.BigEndian.AppendUint32(labelBuf, 2)
	labelBuf = append(labelBuf, 7, 3)
	labels, err := idx.NewLabelSet(labelBuf)
	require.NoError(t, err)

	var out bytes.Buffer
	printSummary(&out, "train", dataset.Partition{Images: testImages(t), Labels: labels})

	s := out.String()
	require.Contains(t, s, "train:\n")
	require.Contains(t, s, "images: magic=2051 count=2 height=2 width=3 bytes=28")
	require.Contains(t, s, "labels: magic=2049 count=2 bytes=10")
	require.Contains(t, s, "classes: 3=1 7=1\n")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LogConfig{Level: "debug", Format: "JSON"})
	require.NoError(t, err)
	require.NotNil(t, logger)

	_, err = newLogger(config.LogConfig{Level: "chatty", Format: "text"})
	require.Error(t, err)
}
