// Sequential cursor over a File.
//
// Cursor is a non-owning view: it holds a reference to the handle and
// a running offset, nothing more. All bounds and growth semantics are
// inherited verbatim from File — the cursor performs no checks of its
// own. Multiple cursors over one handle are independent views with
// independent offsets; a cursor must not be used after its handle is
// closed or handed off (the handle reports ErrClosed in the former
// case but nothing guards the latter).
package diskio

// Cursor tracks a read/write position in a File, advancing as data is
// consumed or produced.
type Cursor struct {
	f   *File
	off int64
}

// Read returns n bytes starting at the cursor's current offset, then
// advances the offset by n. Bounds follow File.Bytes: the span must
// lie entirely within the current file size. The offset does not
// advance on failure.
func (c *Cursor) Read(n int64) ([]byte, error) {
	b, err := c.f.Bytes(c.off, n)
	if err != nil {
		return nil, err
	}
	c.off += n
	return b, nil
}

// WriteUint8 writes one byte at the cursor's current offset, growing
// the file if the offset is at the end, then advances the offset by 1.
func (c *Cursor) WriteUint8(v uint8) error {
	if err := c.f.PutUint8(c.off, v); err != nil {
		return err
	}
	c.off++
	return nil
}

// Offset returns the cursor's current position.
func (c *Cursor) Offset() int64 {
	return c.off
}

// Seek repositions the cursor. Pure cursor state — no I/O and no
// validation; an out-of-range position surfaces on the next Read.
func (c *Cursor) Seek(off int64) {
	c.off = off
}
