/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/parser.go
*/
package resp

import (
	"errors"
	"strconv"

	"github.com/akashmaji946/respcore/internal/sequence"
	"github.com/akashmaji946/respcore/resperr"
	"github.com/akashmaji946/respcore/resplog"
)

// Parser decodes Values off a sequence.Cursor. It
// holds no cursor state of its own - every TryParse call is handed the
// caller's Cursor by pointer and only advances it on a fully successful
// parse, mirroring the Cursor's own "snapshot, scan, commit on success"
// discipline one level up: a frame that turns out to be incomplete
// partway through an aggregate's children leaves the cursor exactly
// where it started, ready for the caller to feed more bytes and retry
// from scratch.
type Parser struct {
	Limits  Limits
	Logger  *resplog.Logger
	Metrics *Metrics
}

// NewParser builds a Parser with the given Limits, falling back to
// DefaultLimits when MaxNestingDepth is unset.
func NewParser(limits Limits) *Parser {
	if limits.MaxNestingDepth <= 0 {
		limits = DefaultLimits()
	}
	return &Parser{Limits: limits}
}

// NewDefaultParser builds a Parser with DefaultLimits().
func NewDefaultParser() *Parser {
	return NewParser(DefaultLimits())
}

// TryParse attempts to decode one complete frame starting at cur's
// current position. ok is false when the input ends before a complete
// frame is available; cur is left untouched in that case. err is
// non-nil only for a genuine framing/format violation, never for
// incompleteness.
func (p *Parser) TryParse(cur *sequence.Cursor) (Value, bool, error) {
	start := cur.Position()
	scan := *cur
	v, ok, err := p.tryParseValue(&scan, 0)
	if err != nil {
		p.Metrics.observeParseError(errorKind(err))
		p.Logger.Warnf("resp: parse error: %v", err)
		return Value{}, false, err
	}
	if !ok {
		p.Metrics.observeIncomplete()
		return Value{}, false, nil
	}
	*cur = scan
	consumed := sequence.Slice(start, scan.Position()).Len()
	p.Metrics.observeParsed(consumed)
	return v, true, nil
}

// TryParseBytes is a convenience wrapper over TryParse for callers
// holding one contiguous []byte rather than a Cursor already in
// flight.
func (p *Parser) TryParseBytes(data []byte) (Value, bool, error) {
	seq := sequence.FromBytes(data)
	cur := sequence.NewCursor(seq)
	return p.TryParse(&cur)
}

func (p *Parser) tryParseValue(cur *sequence.Cursor, depth int) (Value, bool, error) {
	if depth > p.Limits.MaxNestingDepth {
		return Value{}, false, resperr.Invalid("nesting depth exceeds limit of %d", p.Limits.MaxNestingDepth)
	}
	tagByte, ok := cur.PeekByte()
	if !ok {
		return Value{}, false, nil
	}
	tag := Tag(tagByte)
	if !tag.IsKnown() {
		return Value{}, false, resperr.TypeNotImplemented(tagByte)
	}
	cur.ReadByte()

	switch tag.FamilyOf() {
	case FamilyLeafBlob:
		return p.tryParseBlob(cur, tag)
	case FamilyLeafLineTerminated:
		return p.tryParseLineTerminated(cur, tag)
	case FamilyAggregate:
		return p.tryParseAggregate(cur, tag, depth)
	default:
		return Value{}, false, resperr.TypeNotImplemented(tagByte)
	}
}

// tryParseLineTerminated handles the Simple String/Error, Number,
// Double, Boolean, BigNumber and Null tags: all of them are exactly one
// line of content (possibly empty) up to the trailing CRLF. The
// content is stored verbatim; interpreting it as a number or boolean is
// left to the caller via ToString/ParseDouble, since storage is an
// optimization detail and never a contract on the value's contents.
func (p *Parser) tryParseLineTerminated(cur *sequence.Cursor, tag Tag) (Value, bool, error) {
	lr := cur.TryReadToEndOfLine()
	if lr.BadNewline {
		return Value{}, false, resperr.ExpectedNewLine(lr.BadByte)
	}
	if !lr.Complete {
		return Value{}, false, nil
	}
	if tag == TagNull {
		if !lr.Line.IsEmpty() {
			return Value{}, false, resperr.Format("null marker carries unexpected payload")
		}
		return Null(), true, nil
	}
	return createFromSequence(tag, lr.Line), true, nil
}

// tryParseBlob handles BlobString/BlobError/VerbatimString: a decimal
// length line, then exactly that many payload bytes, then a trailing
// CRLF. A length of -1 is a typed null.
func (p *Parser) tryParseBlob(cur *sequence.Cursor, tag Tag) (Value, bool, error) {
	n, ok, err := p.tryReadLength(cur)
	if err != nil || !ok {
		return Value{}, ok, err
	}
	if n == -1 {
		return NullOf(tag), true, nil
	}
	payload, ok := cur.TryReadBytes(n)
	if !ok {
		return Value{}, false, nil
	}
	ok, err = p.readTrailingCRLF(cur)
	if err != nil || !ok {
		return Value{}, ok, err
	}
	return createFromSequence(tag, payload), true, nil
}

// tryParseAggregate handles Array/Set/Push/Map/Attribute: a decimal
// count line (multiplied by the tag's arity to get the wire-level
// child count), then that many recursively-parsed child frames. A
// count of -1 is a typed null; a count of 0 is an Empty aggregate.
func (p *Parser) tryParseAggregate(cur *sequence.Cursor, tag Tag, depth int) (Value, bool, error) {
	count, ok, err := p.tryReadLength(cur)
	if err != nil || !ok {
		return Value{}, ok, err
	}
	if count == -1 {
		return NullOf(tag), true, nil
	}
	total := count * tag.Arity()
	if total == 0 {
		return Value{st: newEmptyState(tag)}, true, nil
	}
	children := make([]Value, 0, total)
	for i := 0; i < total; i++ {
		child, ok, err := p.tryParseValue(cur, depth+1)
		if err != nil {
			return Value{}, false, err
		}
		if !ok {
			return Value{}, false, nil
		}
		children = append(children, child)
	}
	v, err := CreateAggregate(tag, children)
	if err != nil {
		return Value{}, false, err
	}
	return v, true, nil
}

// tryReadLength reads a length/count line: 1-20 ASCII
// digits (optionally a leading '-' for the -1 null marker), in exact
// canonical decimal form (no leading zeros, no "+" sign), parsed as an
// int no smaller than -1.
func (p *Parser) tryReadLength(cur *sequence.Cursor) (int, bool, error) {
	lr := cur.TryReadToEndOfLine()
	if lr.BadNewline {
		return 0, false, resperr.ExpectedNewLine(lr.BadByte)
	}
	if !lr.Complete {
		return 0, false, nil
	}
	raw := lr.Line.ToBytes()
	if len(raw) == 0 || len(raw) > 20 {
		return 0, false, resperr.Format("length field must be 1-20 digits, got %d", len(raw))
	}
	s := string(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, resperr.Format("length field %q is not a valid integer", s)
	}
	if n < -1 {
		return 0, false, resperr.ArgumentOutOfRange("length %d is less than the minimum of -1", n)
	}
	if s != strconv.Itoa(n) {
		return 0, false, resperr.Format("length field %q is not in canonical decimal form", s)
	}
	return n, true, nil
}

// readTrailingCRLF consumes the CRLF expected immediately after a
// blob's payload bytes. The two bytes are checked directly rather than
// through TryReadToEndOfLine: a non-CR byte here is a framing violation
// the moment it arrives, not something to keep reporting incomplete for
// while scanning ahead in hope of a later terminator.
func (p *Parser) readTrailingCRLF(cur *sequence.Cursor) (bool, error) {
	scan := *cur
	cr, ok := scan.ReadByte()
	if !ok {
		return false, nil
	}
	if cr != '\r' {
		return false, resperr.Format("unexpected content between blob payload and its line terminator")
	}
	nl, ok := scan.ReadByte()
	if !ok {
		return false, nil
	}
	if nl != '\n' {
		return false, resperr.ExpectedNewLine(nl)
	}
	*cur = scan
	return true, nil
}

func errorKind(err error) string {
	var e *resperr.Error
	if errors.As(err, &e) {
		return e.Kind.String()
	}
	return "unknown"
}
