package fillbuf

import (
	"github.com/rs/zerolog/log"
)

var _ Buffer = (*SliceBuffer)(nil)

// SliceBuffer is a Buffer over a fixed, caller-provided region. It does not
// own the storage and never reallocates or grows it.
type SliceBuffer struct {
	storage     []byte
	filled      int
	initialized int
	cursor      *sliceCursor
}

// NewSliceBuffer returns a buffer over a region whose contents are fully
// defined, for example a freshly allocated slice.
func NewSliceBuffer(storage []byte) *SliceBuffer {
	return &SliceBuffer{
		storage:     storage,
		initialized: len(storage),
	}
}

// NewUninitSliceBuffer returns a buffer over a region whose contents are
// stale, for example a recycled region from a pool.
//
// Use SetInit() when a leading part of the region is known to be defined.
func NewUninitSliceBuffer(storage []byte) *SliceBuffer {
	return &SliceBuffer{
		storage: storage,
	}
}

func (b *SliceBuffer) Capacity() int {
	return len(b.storage)
}

func (b *SliceBuffer) Len() int {
	return b.filled
}

func (b *SliceBuffer) InitLen() int {
	return b.initialized
}

func (b *SliceBuffer) Filled() []byte {
	return b.storage[:b.filled]
}

func (b *SliceBuffer) Unfilled() Cursor {
	b.assertNoCursor("Unfilled")
	c := &sliceCursor{buf: b, start: b.filled}
	b.cursor = c
	return c
}

// Clear empties the filled region, keeping the initialized count and the
// storage contents.
func (b *SliceBuffer) Clear() {
	b.SetFilled(0)
}

// SetFilled sets the size of the filled region. It can shrink the region in
// addition to growing it, for example after compacting data in place.
//
// It panics when the filled region would exceed the initialized region.
func (b *SliceBuffer) SetFilled(n int) {
	b.assertNoCursor("SetFilled")
	if n < 0 || n > b.initialized {
		log.Panic().
			Int("n", n).
			Int("initialized", b.initialized).
			Msgf("Filled region can not exceed the initialized region")
	}
	b.filled = n
}

// SetInit asserts that the first n bytes of the storage hold defined values.
//
// The caller must guarantee that those bytes were actually written, the
// buffer performs no check beyond bounds.
func (b *SliceBuffer) SetInit(n int) {
	b.assertNoCursor("SetInit")
	if n < 0 || n > len(b.storage) {
		log.Panic().
			Int("n", n).
			Int("capacity", len(b.storage)).
			Msgf("Initialized region can not exceed the capacity")
	}
	if n > b.initialized {
		b.initialized = n
	}
}

func (b *SliceBuffer) assertNoCursor(op string) {
	if b.cursor != nil {
		log.Panic().Msgf("%s() called on the buffer while a cursor is outstanding", op)
	}
}
