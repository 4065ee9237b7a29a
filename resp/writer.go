/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/writer.go
*/
package resp

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/akashmaji946/respcore/resperr"
	"github.com/akashmaji946/respcore/resplog"
)

var crlf = []byte("\r\n")

// Writer streams Values onto a Sink at a chosen wire version. It holds
// the current span handed out by the sink, how much of it has been
// filled, and a running total of bytes committed across the whole
// session.
type Writer struct {
	sink    Sink
	version Version

	span []byte
	pos  int

	total int64

	charEncoder transform.Transformer

	Logger  *resplog.Logger
	Metrics *Metrics
}

// NewWriter builds a Writer over sink targeting version.
func NewWriter(sink Sink, version Version) *Writer {
	return &Writer{sink: sink, version: version}
}

// Ensure returns a slice of at least n writable bytes, flushing the
// current span to the sink and requesting a new one if it doesn't have
// enough room left.
func (w *Writer) Ensure(n int) []byte {
	if len(w.span)-w.pos < n {
		w.flushSpan()
		w.span = w.sink.GetSpan(n)
		w.pos = 0
	}
	return w.span[w.pos:]
}

// Commit marks the first n bytes returned by the most recent Ensure as
// written.
func (w *Writer) Commit(n int) {
	w.pos += n
}

func (w *Writer) flushSpan() {
	if w.pos > 0 {
		w.sink.Advance(w.pos)
		w.total += int64(w.pos)
		w.pos = 0
	}
	w.span = nil
}

// Complete flushes any pending span to the sink and returns the total
// number of bytes written across the Writer's lifetime.
func (w *Writer) Complete() int64 {
	w.flushSpan()
	return w.total
}

func (w *Writer) writeByte(b byte) {
	buf := w.Ensure(1)
	buf[0] = b
	w.Commit(1)
}

// WriteBytes copies data into the sink, looping across as many spans
// as needed when a single span can't hold it all.
func (w *Writer) WriteBytes(data []byte) {
	for len(data) > 0 {
		buf := w.Ensure(1)
		n := copy(buf, data)
		w.Commit(n)
		data = data[n:]
	}
}

func (w *Writer) writeCRLF() {
	w.WriteBytes(crlf)
}

// WriteUint32 writes n in decimal ASCII.
func (w *Writer) WriteUint32(n uint32) {
	var tmp [10]byte
	w.WriteBytes(appendUint(tmp[:0], uint64(n)))
}

// WriteInt64 writes n in decimal ASCII, sign included when negative.
func (w *Writer) WriteInt64(n int64) {
	var tmp [20]byte
	w.WriteBytes(appendInt(tmp[:0], n))
}

// WriteDouble writes f per FormatDouble.
func (w *Writer) WriteDouble(f float64) {
	w.WriteBytes([]byte(FormatDouble(f)))
}

// getCharEncoder returns the Writer's cached UTF-8 encoding
// transformer, resetting it so a prior call's partial state (a
// pending multi-byte sequence split across Transform calls) can't leak
// into this one.
func (w *Writer) getCharEncoder() transform.Transformer {
	if w.charEncoder == nil {
		w.charEncoder = unicode.UTF8.NewEncoder()
	} else {
		w.charEncoder.Reset()
	}
	return w.charEncoder
}

// writeChars writes a []rune payload as UTF-8. When the exact encoded
// length already fits in the current span it is copied directly;
// otherwise it falls back to the streaming transformer so the encode
// can proceed across however many spans the sink hands out.
func (w *Writer) writeChars(runes []rune) error {
	if len(runes) == 0 {
		return nil
	}
	src := []byte(string(runes))
	if rem := w.Ensure(1); len(rem) >= len(src) {
		n := copy(rem, src)
		w.Commit(n)
		return nil
	}
	return w.writeCharsStreaming(src)
}

func (w *Writer) writeCharsStreaming(src []byte) error {
	enc := w.getCharEncoder()
	stalled := 0
	for {
		dst := w.Ensure(1)
		nDst, nSrc, err := enc.Transform(dst, src, true)
		if nDst > 0 {
			w.Commit(nDst)
		}
		src = src[nSrc:]
		if err == nil {
			if len(src) == 0 {
				return nil
			}
			stalled = 0
			continue
		}
		if err == transform.ErrShortDst || err == transform.ErrShortSrc {
			if nDst == 0 && nSrc == 0 {
				stalled++
				if stalled >= 2 {
					return resperr.Invalid("String encode failed to complete: no progress across two flush attempts")
				}
			} else {
				stalled = 0
			}
			continue
		}
		return resperr.Invalid("String encode failed to complete: %v", err)
	}
}

// leafPayload resolves a leaf value's payload once. Char-bearing
// storages are returned as runes so the caller can stream them through
// the UTF-8 transcoder; everything else is returned pre-rendered as
// bytes via Value.AsBytes.
func leafPayload(v Value) (bytesPayload []byte, runes []rune, isChars bool) {
	if r, ok := v.runesView(); ok {
		return nil, r, true
	}
	return v.AsBytes(), nil, false
}

// writeNull encodes a Null-storage value. RESP3 has one uniform
// representation regardless of t; RESP2 writes the type tag (the
// downgraded wireTag, or BlobString if t is itself the generic Null
// tag) followed by -1.
func (w *Writer) writeNull(t Tag, wireTag Tag) {
	if w.version >= RESP3 {
		w.writeByte(byte(TagNull))
		w.writeCRLF()
		return
	}
	outTag := wireTag
	if t == TagNull {
		outTag = TagBlobString
	}
	w.writeByte(byte(outTag))
	w.WriteBytes([]byte("-1"))
	w.writeCRLF()
}

func (w *Writer) writeBlob(v Value, wireTag Tag) error {
	if v.st.IsEmpty() {
		w.writeByte(byte(wireTag))
		w.writeByte('0')
		w.writeCRLF()
		w.writeCRLF()
		return nil
	}
	bytesPayload, runes, isChars := leafPayload(v)
	length := len(bytesPayload)
	if isChars {
		length = len(string(runes))
	}
	w.writeByte(byte(wireTag))
	w.WriteInt64(int64(length))
	w.writeCRLF()
	if isChars {
		if err := w.writeChars(runes); err != nil {
			return err
		}
	} else {
		w.WriteBytes(bytesPayload)
	}
	w.writeCRLF()
	return nil
}

func (w *Writer) writeLineTerminated(v Value, wireTag Tag) error {
	if v.st.IsEmpty() {
		w.writeByte(byte(wireTag))
		w.writeCRLF()
		return nil
	}
	bytesPayload, runes, isChars := leafPayload(v)
	w.writeByte(byte(wireTag))
	if isChars {
		if err := w.writeChars(runes); err != nil {
			return err
		}
	} else {
		w.WriteBytes(bytesPayload)
	}
	w.writeCRLF()
	return nil
}

func (w *Writer) writeAggregate(v Value, wireTag Tag) error {
	if v.st.IsEmpty() {
		w.writeByte(byte(wireTag))
		w.writeByte('0')
		w.writeCRLF()
		return nil
	}
	children := v.SubItems()
	arity := wireTag.Arity()
	if arity == 0 {
		arity = 1
	}
	count := len(children) / arity
	w.writeByte(byte(wireTag))
	w.WriteInt64(int64(count))
	w.writeCRLF()
	for _, child := range children {
		if err := w.writeValue(child); err != nil {
			return err
		}
	}
	return nil
}

// writeWrappedUnitAggregate writes the compressed form of a unit
// aggregate whose sole child was folded into the parent's own state:
// <type>1\r\n followed directly by the child's frame, both tags
// downgraded independently.
func (w *Writer) writeWrappedUnitAggregate(v Value) error {
	parentWire := downgradeIfNeeded(v.st.Type, w.version)
	w.writeByte(byte(parentWire))
	w.writeByte('1')
	w.writeCRLF()

	childState := v.st.Unwrap()
	child := Value{st: childState}
	childWire := downgradeIfNeeded(childState.Type, w.version)
	if childState.Type.IsBlob() {
		return w.writeBlob(child, childWire)
	}
	return w.writeLineTerminated(child, childWire)
}

// WriteValue writes v to the Writer's sink at its configured version.
func (w *Writer) WriteValue(v Value) error {
	startTotal := w.total + int64(w.pos)
	if err := w.writeValue(v); err != nil {
		return err
	}
	written := int(w.total + int64(w.pos) - startTotal)
	w.Metrics.observeWritten(written)
	return nil
}

func (w *Writer) writeValue(v Value) error {
	if v.st.CanUnwrap() {
		return w.writeWrappedUnitAggregate(v)
	}

	t := v.Type()
	wireTag := downgradeIfNeeded(t, w.version)
	if wireTag != t {
		w.Metrics.observeDowngrade()
		w.Logger.Debugf("resp: downgraded %s to %s for RESP2", t, wireTag)
	}

	if v.st.IsNull() {
		w.writeNull(t, wireTag)
		return nil
	}

	switch {
	case t.IsBlob():
		return w.writeBlob(v, wireTag)
	case t.IsLineTerminated():
		return w.writeLineTerminated(v, wireTag)
	case t.IsAggregate():
		return w.writeAggregate(v, wireTag)
	default:
		return resperr.TypeNotImplemented(byte(t))
	}
}

// Write is the one-shot convenience form of the "Write(sink, version)"
// instance operation: build a fresh Writer, write v, and flush. Prefer
// constructing a Writer directly and
// calling WriteValue repeatedly when writing a stream of frames onto
// the same sink, since that path doesn't throw away the Writer's
// cached char encoder between frames.
func (v Value) Write(sink Sink, version Version) (int64, error) {
	w := NewWriter(sink, version)
	if err := w.WriteValue(v); err != nil {
		return 0, err
	}
	return w.Complete(), nil
}

func appendUint(dst []byte, n uint64) []byte {
	if n == 0 {
		return append(dst, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, tmp[i:]...)
}

func appendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return appendUint(dst, uint64(-n))
	}
	return appendUint(dst, uint64(n))
}
