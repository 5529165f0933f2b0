// Package strbuf provides a growable byte buffer with exclusive ownership,
// plus in-place text normalizers (BOM removal, trailing CR/LF removal) and
// strict UTF-8 validation via the utf8check subpackage.
package strbuf

import (
	"io"

	"github.com/bulga138/strbuf/utf8check"
)

// Buffer is an owned, contiguous, mutable sequence of bytes. The zero value
// is an empty buffer ready to use. A Buffer never shares storage with
// another live Buffer: every constructor and Plus copies.
//
// A Buffer is not safe for concurrent mutation; callers needing shared
// access must synchronize externally.
type Buffer struct {
	data []byte
}

// New returns an empty Buffer with no allocated storage.
func New() *Buffer {
	return &Buffer{}
}

// NewFromBytes returns a Buffer holding a copy of src. The source is never
// borrowed, so later mutations of src do not affect the buffer.
func NewFromBytes(src []byte) *Buffer {
	b := &Buffer{}
	if len(src) > 0 {
		b.data = make([]byte, len(src))
		copy(b.data, src)
	}
	return b
}

// NewFromString returns a Buffer holding a copy of s.
func NewFromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// Len returns the number of logical bytes in the buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Cap returns the allocated capacity in bytes.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return cap(b.data)
}

// Bytes returns the buffer's logical bytes without copying. The view is
// read-only and only valid until the next mutating call.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// String returns a copy of the buffer's content as a string.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Reset truncates the buffer to zero length, keeping allocated storage for
// reuse.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Reserve grows the backing storage to at least n bytes of capacity. It is
// a no-op if the capacity is already sufficient; content is preserved and
// capacity never shrinks.
func (b *Buffer) Reserve(n int) {
	if n <= cap(b.data) {
		return
	}
	grown := make([]byte, len(b.data), n)
	copy(grown, b.data)
	b.data = grown
}

// AppendByte appends a single byte, doubling capacity (minimum 2) when the
// buffer is full. Amortized O(1).
func (b *Buffer) AppendByte(c byte) {
	if len(b.data) == cap(b.data) {
		next := cap(b.data) * 2
		if next < 2 {
			next = 2
		}
		b.Reserve(next)
	}
	b.data = append(b.data, c)
}

// Concat appends all of src's bytes onto b, reserving exactly the combined
// length if growth is needed. A nil or empty src leaves b unchanged; src is
// never modified.
func (b *Buffer) Concat(src *Buffer) {
	if src.Len() == 0 {
		return
	}
	b.Reserve(len(b.data) + len(src.data))
	b.data = append(b.data, src.data...)
}

// Plus returns a new Buffer holding the bytes of a followed by the bytes of
// b. Either side may be nil or empty. The result owns fresh storage and
// never aliases either input.
func Plus(a, b *Buffer) *Buffer {
	out := &Buffer{}
	if total := a.Len() + b.Len(); total > 0 {
		out.data = make([]byte, 0, total)
		out.data = append(out.data, a.Bytes()...)
		out.data = append(out.data, b.Bytes()...)
	}
	return out
}

// WriteTo writes the entire contents of the buffer to an io.Writer.
// Returns the number of bytes written and any error encountered.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Valid reports whether the buffer's current content is well-formed UTF-8.
// An empty buffer is valid. Validation never mutates the buffer.
func (b *Buffer) Valid() bool {
	return utf8check.Valid(b.Bytes())
}
