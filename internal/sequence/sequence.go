/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/internal/sequence/sequence.go
*/

// Package sequence implements a read cursor over a discontiguous chain
// of byte segments. A frame does not need to live in one contiguous
// []byte: it may straddle two or more segments handed to us by a
// transport (one per recv() call, say), and the parser must be able
// to read across that boundary without requiring the caller to
// coalesce first.
package sequence

// Segment is one link in a chain of byte buffers. Next is nil for the
// last segment currently appended to a Sequence.
type Segment struct {
	Bytes []byte
	Next  *Segment
}

// Position names an absolute location within a chain of Segments: a
// segment pointer plus a byte offset into it.
type Position struct {
	Seg *Segment
	Off int
}

// Sequence is the span of bytes from Start (inclusive) to End
// (exclusive), across one or more linked Segments.
type Sequence struct {
	Start Position
	End   Position
}

// FromBytes builds a single-segment Sequence wrapping b.
func FromBytes(b []byte) Sequence {
	seg := &Segment{Bytes: b}
	return Sequence{
		Start: Position{Seg: seg, Off: 0},
		End:   Position{Seg: seg, Off: len(b)},
	}
}

// FromSegments builds a Sequence chaining bufs in order. Empty bufs
// are kept as zero-length segments rather than skipped, so a Position
// built from them still identifies the right link for callers that
// hold on to Start/End across appends.
func FromSegments(bufs [][]byte) Sequence {
	if len(bufs) == 0 {
		return FromBytes(nil)
	}
	first := &Segment{Bytes: bufs[0]}
	cur := first
	for _, b := range bufs[1:] {
		next := &Segment{Bytes: b}
		cur.Next = next
		cur = next
	}
	return Sequence{
		Start: Position{Seg: first, Off: 0},
		End:   Position{Seg: cur, Off: len(cur.Bytes)},
	}
}

// Len returns the total byte length of the sequence. It walks the
// segment chain, so it is O(segments), not O(1).
func (s Sequence) Len() int {
	if s.Start.Seg == s.End.Seg {
		return s.End.Off - s.Start.Off
	}
	n := len(s.Start.Seg.Bytes) - s.Start.Off
	for seg := s.Start.Seg.Next; seg != nil && seg != s.End.Seg; seg = seg.Next {
		n += len(seg.Bytes)
	}
	n += s.End.Off
	return n
}

// IsEmpty reports whether the sequence has zero length.
func (s Sequence) IsEmpty() bool {
	return s.Len() == 0
}

// ToBytes materializes the sequence into a single contiguous slice,
// copying across segment boundaries. Used by Preserve and by any
// factory that needs a contiguous []byte to classify storage from.
func (s Sequence) ToBytes() []byte {
	if s.Start.Seg == s.End.Seg {
		return append([]byte(nil), s.Start.Seg.Bytes[s.Start.Off:s.End.Off]...)
	}
	out := make([]byte, 0, s.Len())
	out = append(out, s.Start.Seg.Bytes[s.Start.Off:]...)
	for seg := s.Start.Seg.Next; seg != nil && seg != s.End.Seg; seg = seg.Next {
		out = append(out, seg.Bytes...)
	}
	out = append(out, s.End.Seg.Bytes[:s.End.Off]...)
	return out
}

// Slice returns the portion of s from [from, to), both positions that
// must have been produced by walking s (e.g. from a Cursor over it).
func Slice(from, to Position) Sequence {
	return Sequence{Start: from, End: to}
}
