package fillbuf

import (
	"github.com/polarstreams/fillbuf/internal/metrics"
	"github.com/rs/zerolog/log"
)

var _ Buffer = (*GrowBuffer)(nil)
var _ Cursor = (*growCursor)(nil)

// GrowBuffer is a Buffer over an owned byte slice that can grow and
// reallocate. The filled region is the slice itself, so for this storage
// kind the initialized count of the buffer always equals its length:
// definedness beyond the length is tracked per cursor and discarded when the
// cursor is released, since a reallocation may relocate the storage.
type GrowBuffer struct {
	data   []byte
	cursor *growCursor
}

// NewGrowBuffer returns an empty growable buffer with the provided initial
// capacity.
func NewGrowBuffer(capacity int) *GrowBuffer {
	return &GrowBuffer{
		data: make([]byte, 0, capacity),
	}
}

func (b *GrowBuffer) Capacity() int {
	return cap(b.data)
}

func (b *GrowBuffer) Len() int {
	return len(b.data)
}

func (b *GrowBuffer) InitLen() int {
	return len(b.data)
}

func (b *GrowBuffer) Filled() []byte {
	return b.data
}

func (b *GrowBuffer) Unfilled() Cursor {
	b.assertNoCursor("Unfilled")
	c := &growCursor{
		buf: b,
		// Definedness knowledge from previous cursors is discarded
		initialized: len(b.data),
		start:       len(b.data),
	}
	b.cursor = c
	return c
}

// Clear truncates the buffer to zero length. For the owned storage kind the
// initialized knowledge is the length itself, so it is discarded as well.
func (b *GrowBuffer) Clear() {
	b.assertNoCursor("Clear")
	b.data = b.data[:0]
}

// SetInit asserts that the storage holds defined values up to index n,
// extending the length when n exceeds it.
//
// The caller must guarantee that those bytes were actually written.
func (b *GrowBuffer) SetInit(n int) {
	b.assertNoCursor("SetInit")
	if n < 0 || n > cap(b.data) {
		log.Panic().
			Int("n", n).
			Int("capacity", cap(b.data)).
			Msgf("Initialized region can not exceed the capacity")
	}
	if n > len(b.data) {
		b.data = b.data[:n]
	}
}

// Reserve makes room for at least n more bytes, reallocating through the
// runtime's append growth policy when needed.
func (b *GrowBuffer) Reserve(n int) {
	b.assertNoCursor("Reserve")
	if cap(b.data)-len(b.data) >= n {
		return
	}
	length := len(b.data)
	b.data = append(b.data, make([]byte, n)...)[:length]
}

func (b *GrowBuffer) assertNoCursor(op string) {
	if b.cursor != nil {
		log.Panic().Msgf("%s() called on the buffer while a cursor is outstanding", op)
	}
}

// growCursor is the Cursor implementation for GrowBuffer. Unlike the fixed
// cursor it carries its own initialized mark, an absolute index into the
// full-capacity region that starts out at the buffer's length.
type growCursor struct {
	buf         *GrowBuffer
	initialized int
	start       int
	released    bool
}

// window returns the full-capacity view of the owned slice.
func (c *growCursor) window() []byte {
	return c.buf.data[:cap(c.buf.data)]
}

func (c *growCursor) Capacity() int {
	c.assertLive()
	return cap(c.buf.data) - len(c.buf.data)
}

func (c *growCursor) Written() int {
	c.assertLive()
	return len(c.buf.data) - c.start
}

func (c *growCursor) Initialized() []byte {
	c.assertLive()
	return c.window()[len(c.buf.data):c.initialized]
}

func (c *growCursor) Uninitialized() []byte {
	c.assertLive()
	return c.window()[c.initialized:]
}

func (c *growCursor) Unfilled() []byte {
	c.assertLive()
	return c.window()[len(c.buf.data):]
}

func (c *growCursor) Advance(n int) {
	c.assertLive()
	length := len(c.buf.data) + n
	if n < 0 || length > cap(c.buf.data) {
		log.Panic().
			Int("n", n).
			Int("remaining", c.Capacity()).
			Msgf("Advance() past the end of the buffer")
	}
	c.buf.data = c.buf.data[:length]
	if length > c.initialized {
		c.initialized = length
	}
}

func (c *growCursor) EnsureInit() {
	c.assertLive()
	stale := c.window()[c.initialized:]
	for i := range stale {
		stale[i] = 0
	}
	c.initialized = cap(c.buf.data)
	metrics.EnsureInitBytes.Observe(float64(len(stale)))
}

func (c *growCursor) SetInit(n int) {
	c.assertLive()
	target := len(c.buf.data) + n
	if n < 0 || target > cap(c.buf.data) {
		log.Panic().
			Int("n", n).
			Int("remaining", c.Capacity()).
			Msgf("SetInit() past the end of the buffer")
	}
	if target > c.initialized {
		c.initialized = target
	}
}

func (c *growCursor) Append(p []byte) {
	c.assertLive()
	if c.Capacity() < len(p) {
		log.Panic().
			Int("length", len(p)).
			Int("remaining", c.Capacity()).
			Msgf("Append() does not fit in the remaining room")
	}
	length := len(c.buf.data)
	copy(c.window()[length:], p)
	c.buf.data = c.buf.data[:length+len(p)]
	if length+len(p) > c.initialized {
		c.initialized = length + len(p)
	}
}

func (c *growCursor) Release() {
	c.assertLive()
	c.released = true
	c.buf.cursor = nil
}

func (c *growCursor) assertLive() {
	if c.released {
		log.Panic().Msgf("Cursor used after Release()")
	}
}
