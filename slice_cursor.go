package fillbuf

import (
	"github.com/polarstreams/fillbuf/internal/metrics"
	"github.com/rs/zerolog/log"
)

var _ Cursor = (*sliceCursor)(nil)

// sliceCursor is the Cursor implementation for SliceBuffer. The counters
// live in the buffer, the cursor only carries the borrow.
type sliceCursor struct {
	buf      *SliceBuffer
	start    int
	released bool
}

func (c *sliceCursor) Capacity() int {
	c.assertLive()
	return len(c.buf.storage) - c.buf.filled
}

func (c *sliceCursor) Written() int {
	c.assertLive()
	return c.buf.filled - c.start
}

func (c *sliceCursor) Initialized() []byte {
	c.assertLive()
	return c.buf.storage[c.buf.filled:c.buf.initialized]
}

func (c *sliceCursor) Uninitialized() []byte {
	c.assertLive()
	return c.buf.storage[c.buf.initialized:]
}

func (c *sliceCursor) Unfilled() []byte {
	c.assertLive()
	return c.buf.storage[c.buf.filled:]
}

func (c *sliceCursor) Advance(n int) {
	c.assertLive()
	if n < 0 || c.buf.filled+n > len(c.buf.storage) {
		log.Panic().
			Int("n", n).
			Int("remaining", c.Capacity()).
			Msgf("Advance() past the end of the buffer")
	}
	c.buf.filled += n
	if c.buf.filled > c.buf.initialized {
		c.buf.initialized = c.buf.filled
	}
}

func (c *sliceCursor) EnsureInit() {
	c.assertLive()
	stale := c.buf.storage[c.buf.initialized:]
	for i := range stale {
		stale[i] = 0
	}
	c.buf.initialized = len(c.buf.storage)
	metrics.EnsureInitBytes.Observe(float64(len(stale)))
}

func (c *sliceCursor) SetInit(n int) {
	c.assertLive()
	target := c.buf.filled + n
	if n < 0 || target > len(c.buf.storage) {
		log.Panic().
			Int("n", n).
			Int("remaining", c.Capacity()).
			Msgf("SetInit() past the end of the buffer")
	}
	if target > c.buf.initialized {
		c.buf.initialized = target
	}
}

func (c *sliceCursor) Append(p []byte) {
	c.assertLive()
	if c.Capacity() < len(p) {
		log.Panic().
			Int("length", len(p)).
			Int("remaining", c.Capacity()).
			Msgf("Append() does not fit in the remaining room")
	}
	copy(c.buf.storage[c.buf.filled:], p)
	c.buf.filled += len(p)
	if c.buf.filled > c.buf.initialized {
		c.buf.initialized = c.buf.filled
	}
}

func (c *sliceCursor) Release() {
	c.assertLive()
	c.released = true
	c.buf.cursor = nil
}

func (c *sliceCursor) assertLive() {
	if c.released {
		log.Panic().Msgf("Cursor used after Release()")
	}
}
