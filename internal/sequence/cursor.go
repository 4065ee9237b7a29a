/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/internal/sequence/cursor.go
*/
package sequence

// Cursor is a mutable read position over a Sequence. It never mutates
// the underlying Segments, only its own position, so a Cursor can be
// copied by value to snapshot a rewind point before a speculative
// parse attempt.
type Cursor struct {
	end Position
	pos Position
}

// NewCursor starts a Cursor at the beginning of seq.
func NewCursor(seq Sequence) Cursor {
	return Cursor{end: seq.End, pos: seq.Start}
}

// Position returns the cursor's current absolute position.
func (c Cursor) Position() Position { return c.pos }

// Remaining reports whether any bytes remain before the cursor's end.
func (c Cursor) Remaining() bool {
	return c.advanceSegment()
}

func (c *Cursor) segLen() int {
	if c.pos.Seg == c.end.Seg {
		return c.end.Off
	}
	return len(c.pos.Seg.Bytes)
}

// advanceSegment moves onto the next non-empty segment if the current
// one is exhausted. Returns false if no more segments are available
// before c.end.
func (c *Cursor) advanceSegment() bool {
	for c.pos.Off >= c.segLen() {
		if c.pos.Seg == c.end.Seg {
			return false
		}
		c.pos = Position{Seg: c.pos.Seg.Next, Off: 0}
		if c.pos.Seg == nil {
			return false
		}
	}
	return true
}

// PeekByte returns the next byte without consuming it. ok is false if
// the cursor is at its end (incomplete read).
func (c *Cursor) PeekByte() (b byte, ok bool) {
	if !c.advanceSegment() {
		return 0, false
	}
	return c.pos.Seg.Bytes[c.pos.Off], true
}

// ReadByte consumes and returns the next byte.
func (c *Cursor) ReadByte() (b byte, ok bool) {
	b, ok = c.PeekByte()
	if !ok {
		return 0, false
	}
	c.pos.Off++
	return b, true
}

// Advance consumes n bytes, returning false (and leaving the cursor
// wherever it got to) if fewer than n remained.
func (c *Cursor) Advance(n int) bool {
	for n > 0 {
		if !c.advanceSegment() {
			return false
		}
		avail := c.segLen() - c.pos.Off
		step := avail
		if step > n {
			step = n
		}
		c.pos.Off += step
		n -= step
	}
	return true
}

// LineResult is the outcome of TryReadToEndOfLine.
type LineResult struct {
	Line       Sequence
	Complete   bool // a full "\r\n"-terminated line was found
	BadNewline bool // a '\r' was found but not followed by '\n'
	BadByte    byte // the offending byte, valid iff BadNewline
}

// TryReadToEndOfLine scans for the next "\r\n" and, on success, returns
// the Sequence of bytes before it (exclusive) with the cursor advanced
// past the trailing "\n". A bare '\r' not followed by '\n' is a
// framing error (BadNewline), and either marker missing at all is an
// incomplete read (Complete=false, BadNewline=false) with no position
// change observable to the caller, since this method only commits to a
// cursor mutation after finding a complete, well-formed line.
func (c *Cursor) TryReadToEndOfLine() LineResult {
	scan := *c
	start := scan.pos
	for {
		b, have := scan.ReadByte()
		if !have {
			return LineResult{}
		}
		if b != '\r' {
			continue
		}
		lineEnd := scan.pos
		lineEnd.Off-- // position of the '\r' itself
		nl, have := scan.ReadByte()
		if !have {
			return LineResult{}
		}
		if nl != '\n' {
			return LineResult{BadNewline: true, BadByte: nl}
		}
		*c = scan
		return LineResult{Line: Sequence{Start: start, End: lineEnd}, Complete: true}
	}
}

// TryReadBytes consumes exactly n bytes and returns them as a
// Sequence, or reports incomplete without advancing c.
func (c *Cursor) TryReadBytes(n int) (Sequence, bool) {
	scan := *c
	start := scan.pos
	if !scan.Advance(n) {
		return Sequence{}, false
	}
	end := scan.pos
	*c = scan
	return Sequence{Start: start, End: end}, true
}
