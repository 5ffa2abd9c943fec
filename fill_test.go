package fillbuf

import (
	"bytes"
	"errors"

	"github.com/klauspost/compress/zstd"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fill()", func() {
	It("should drain a decompressor into a recycled region", func() {
		payload := bytes.Repeat([]byte("polar"), 100)
		compressed := new(bytes.Buffer)
		w, err := zstd.NewWriter(compressed)
		Expect(err).NotTo(HaveOccurred())
		_, err = w.Write(payload)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Close()).To(Succeed())

		r, err := zstd.NewReader(compressed)
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()

		region := bytes.Repeat([]byte{0xff}, 1024) // stale contents
		b := NewUninitSliceBuffer(region)
		c := b.Unfilled()
		n, err := Fill(c, r)
		c.Release()

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(len(payload)))
		Expect(b.Filled()).To(Equal(payload))
	})

	It("should stop at a full cursor", func() {
		b := NewUninitSliceBuffer(make([]byte, 16))
		c := b.Unfilled()
		n, err := Fill(c, bytes.NewReader(make([]byte, 100)))
		c.Release()

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(16))
		Expect(b.Len()).To(Equal(16))
	})

	It("should pass reader errors through untouched", func() {
		expected := errors.New("source failed")
		b := NewUninitSliceBuffer(make([]byte, 16))
		c := b.Unfilled()
		n, err := Fill(c, &chunkReader{chunks: [][]byte{{1, 2, 3}}, err: expected})
		c.Release()

		Expect(err).To(BeIdenticalTo(expected))
		Expect(n).To(Equal(3))
		Expect(b.Filled()).To(Equal([]byte{1, 2, 3}))
	})

	It("should stop on a read that makes no progress", func() {
		b := NewUninitSliceBuffer(make([]byte, 16))
		c := b.Unfilled()
		n, err := Fill(c, &chunkReader{chunks: [][]byte{{1, 2}, nil, {3}}})
		c.Release()

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(2))
		Expect(b.Filled()).To(Equal([]byte{1, 2}))
	})

	It("should fill a growable buffer the same way", func() {
		b := NewGrowBuffer(8)
		c := b.Unfilled()
		n, err := Fill(c, bytes.NewReader([]byte{1, 2, 3, 4, 5}))
		c.Release()

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(5))
		Expect(b.Filled()).To(Equal([]byte{1, 2, 3, 4, 5}))
	})
})

var _ = Describe("ReadFrom()", func() {
	It("should commit exactly the bytes produced by one read", func() {
		b := NewUninitSliceBuffer(make([]byte, 16))
		c := b.Unfilled()
		n, err := ReadFrom(c, &chunkReader{chunks: [][]byte{{1, 2, 3}, {4}}})

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(3))
		Expect(c.Written()).To(Equal(3))
		c.Release()
		Expect(b.Filled()).To(Equal([]byte{1, 2, 3}))
	})

	It("should not call the reader when the cursor is full", func() {
		b := NewUninitSliceBuffer([]byte{})
		c := b.Unfilled()
		n, err := ReadFrom(c, &chunkReader{})
		c.Release()

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(0))
	})
})

// chunkReader produces one chunk per Read() call. Once drained it keeps
// returning the configured error, or (0, nil) when none is set.
type chunkReader struct {
	chunks [][]byte
	err    error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, nil
	}
	chunk := r.chunks[0]
	r.chunks = r.chunks[1:]
	return copy(p, chunk), nil
}
