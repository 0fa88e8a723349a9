package dataset

import (
	"bytes"
	"encoding/binary"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

const (
	testHeight = 4
	testWidth  = 3
	trainCount = 20
	testCount  = 10
)

func labelFile(labels []byte) []byte {
	buf := binary.BigEndian.AppendUint32(nil, 2049)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(labels)))

	return append(buf, labels...)
}

func imageFile(count, height, width int, seed byte) []byte {
	buf := binary.BigEndian.AppendUint32(nil, 2051)
	buf = binary.BigEndian.AppendUint32(buf, uint32(count))
	buf = binary.BigEndian.AppendUint32(buf, uint32(height))
	buf = binary.BigEndian.AppendUint32(buf, uint32(width))
	for i := range count * height * width {
		buf = append(buf, byte(i)+seed)
	}

	return buf
}

func labelsFor(count int) []byte {
	labels := make([]byte, count)
	for i := range labels {
		labels[i] = byte(i % 10)
	}

	return labels
}

// rawFiles returns uncompressed IDX contents keyed by decompressed file name.
func rawFiles() map[string][]byte {
	return map[string][]byte{
		"train-images-idx3-ubyte": imageFile(trainCount, testHeight, testWidth, 0),
		"train-labels-idx1-ubyte": labelFile(labelsFor(trainCount)),
		"t10k-images-idx3-ubyte":  imageFile(testCount, testHeight, testWidth, 100),
		"t10k-labels-idx1-ubyte":  labelFile(labelsFor(testCount)),
	}
}

func gzipBytes(t testing.TB, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func zstdBytes(t testing.TB, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// datasetServer serves gzip-compressed IDX files and counts requests per file.
type datasetServer struct {
	*httptest.Server

	mu    sync.Mutex
	files map[string][]byte
	hits  map[string]int
}

func newDatasetServer(t *testing.T) *datasetServer {
	t.Helper()

	s := &datasetServer{
		files: make(map[string][]byte),
		hits:  make(map[string]int),
	}
	for name, data := range rawFiles() {
		s.files[name+".gz"] = gzipBytes(t, data)
	}

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Base(r.URL.Path)

		s.mu.Lock()
		s.hits[name]++
		data, ok := s.files[name]
		s.mu.Unlock()

		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(s.Close)

	return s
}

func (s *datasetServer) set(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = data
}

func (s *datasetServer) remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, name)
}

func (s *datasetServer) totalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, n := range s.hits {
		total += n
	}

	return total
}
