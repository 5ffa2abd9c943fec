// Package fillbuf provides byte buffers designed for incremental filling.
//
// A buffer tracks which leading bytes are logically defined so that fill
// loops never re-zero memory that already holds valid data and consumers
// never read the stale tail of a recycled region.
package fillbuf

// Buffer represents a byte storage area split into three nested leading
// regions: filled bytes (the current logical output), initialized bytes
// (defined but not yet part of the output) and a stale tail whose previous
// contents must not be interpreted.
//
// For every buffer, 0 <= Len() <= InitLen() <= Capacity() holds and
// InitLen() never decreases during the buffer's lifetime.
//
// Implementations are not thread-safe, each instance is used by a single
// caller at a time.
type Buffer interface {
	// Capacity returns the total size of the storage area.
	Capacity() int

	// Len returns the size of the filled region.
	Len() int

	// InitLen returns the size of the initialized region.
	InitLen() int

	// Filled returns the filled region, the only part of the storage that is
	// both defined and current output.
	Filled() []byte

	// Unfilled returns a cursor over the unfilled part of the buffer.
	//
	// At most one cursor can be outstanding, obtaining a second one before
	// releasing the first panics.
	Unfilled() Cursor

	// Clear empties the filled region. The initialized count and the storage
	// contents are not modified, allowing defined bytes to be reused without
	// zero-filling them again.
	Clear()

	// SetInit asserts that the first n bytes of the storage hold defined
	// values. It does nothing when called with fewer bytes than are already
	// known to be initialized.
	//
	// The caller must guarantee that those bytes were actually written.
	SetInit(n int)
}

// Cursor is a transient, exclusive view over the unfilled part of a Buffer.
// All state-changing operations on the buffer go through its cursor, ending
// with Release.
type Cursor interface {
	// Capacity returns the remaining room of the buffer.
	Capacity() int

	// Written returns the number of bytes committed through this cursor
	// since it was created.
	Written() int

	// Initialized returns the window of bytes that are defined but not yet
	// part of the output. They can be read and overwritten freely.
	Initialized() []byte

	// Uninitialized returns the stale tail. It is safe to write anything
	// into it, its previous contents are meaningless.
	Uninitialized() []byte

	// Unfilled returns the whole remaining window, the defined part followed
	// by the stale tail.
	//
	// The caller must leave the bytes below the initialized mark holding
	// defined values.
	Unfilled() []byte

	// Advance commits n more bytes as filled.
	//
	// The caller must guarantee that the first n bytes of the unfilled
	// window hold defined values.
	Advance(n int)

	// EnsureInit zero-fills the stale tail so that the whole remaining
	// window can be read without further care. Idempotent.
	EnsureInit()

	// SetInit asserts that the first n bytes of the unfilled window hold
	// defined values that were written through an external mechanism. It
	// does nothing when called with fewer bytes than are already known to be
	// initialized.
	SetInit(n int)

	// Append copies p into the unfilled window and commits it as filled.
	//
	// It panics when the remaining room is smaller than p, leaving the
	// buffer state untouched.
	Append(p []byte)

	// Release ends the exclusive borrow, allowing the buffer to hand out a
	// new cursor. The cursor must not be used afterwards.
	Release()
}
