package fillbuf

import "io"

// ReadFrom performs a single read from r into the unfilled window of c and
// commits the bytes the reader produced.
//
// Errors from the reader are returned untouched. A read into a full cursor
// returns (0, nil) without calling the reader.
func ReadFrom(c Cursor, r io.Reader) (int, error) {
	if c.Capacity() == 0 {
		return 0, nil
	}
	n, err := r.Read(c.Unfilled())
	c.Advance(n)
	return n, err
}

// Fill reads from r until the cursor is full or the reader is drained,
// returning the number of bytes committed.
//
// io.EOF is consumed and reported as success. A (0, nil) read is treated as
// the reader having nothing more to produce right now, so Fill stops instead
// of spinning. Any other error is returned untouched alongside the progress
// made before it.
func Fill(c Cursor, r io.Reader) (int, error) {
	total := 0
	for c.Capacity() > 0 {
		n, err := ReadFrom(c, r)
		total += n
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}
