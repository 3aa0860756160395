package hanzime

import (
	"unicode/utf8"
)

// TraceCode is a diagnostic code for branches which should be unreachable.
type TraceCode int

// Trace codes reported to a Sink.
const (
	TraceNotOpenChoice TraceCode = 901 // entry of an open choice has only one alternative
	TraceEmptySlice    TraceCode = 902 // single character slice unexpectedly empty
	TraceQueueFull     TraceCode = 903 // token dropped because the queue is full
)

// Sink receives rendered text. It decouples formatting of query results
// from the IO of clients.
type Sink interface {
	WriteString(text string) // append text to the result
	Trace(code TraceCode)    // report a diagnostic; may be a no-op
	String() string          // the accumulated result
}

// BufSink is a Sink backed by a fixed buffer of Capacity bytes. Text beyond
// capacity is silently dropped. Trace codes are ignored.
//
// The zero value is ready to use.
type BufSink struct {
	buf       [Capacity]byte
	pos       int
	truncated bool
}

// WriteString appends text to the buffer.
func (b *BufSink) WriteString(text string) {
	n := copy(b.buf[b.pos:], text)
	b.pos += n
	if n < len(text) {
		b.truncated = true
	}
}

// Trace ignores trace codes.
func (b *BufSink) Trace(TraceCode) {}

// Bytes returns the buffer contents. The slice is valid until the next
// call to WriteString or Rewind.
func (b *BufSink) Bytes() []byte {
	return b.buf[:b.pos]
}

// String returns the buffer contents. If truncation has split a multi-byte
// character, the result is not valid UTF-8 and String returns "".
func (b *BufSink) String() string {
	if !utf8.Valid(b.buf[:b.pos]) {
		return ""
	}
	return string(b.buf[:b.pos])
}

// Len returns the number of bytes in the buffer.
func (b *BufSink) Len() int {
	return b.pos
}

// Truncated is true if text has been dropped since the last Rewind.
func (b *BufSink) Truncated() bool {
	return b.truncated
}

// Rewind truncates the buffer back to 0 bytes.
func (b *BufSink) Rewind() {
	b.pos = 0
	b.truncated = false
}

// TracingSink forwards text to another Sink and trace codes to the
// 'hanzime' tracer.
type TracingSink struct {
	Sink
	Codes []TraceCode // codes seen so far
}

// Trace logs code and records it.
func (t *TracingSink) Trace(code TraceCode) {
	tracer().Errorf("hanzime: internal invariant violated, trace code %d", int(code))
	t.Codes = append(t.Codes, code)
	if t.Sink != nil {
		t.Sink.Trace(code)
	}
}

// WriteString appends text to the wrapped sink.
func (t *TracingSink) WriteString(text string) {
	if t.Sink != nil {
		t.Sink.WriteString(text)
	}
}

// String returns the result of the wrapped sink.
func (t *TracingSink) String() string {
	if t.Sink == nil {
		return ""
	}
	return t.Sink.String()
}
