// Package ipcmem holds the shared memory buffers for exchanging queries
// and replies with a WebAssembly host.
//
// The buffers are process-wide and NOT goroutine safe. A host writes a
// UTF-8 query into In, calls Translate and reads Position() bytes from Out.
package ipcmem

import (
	"unicode/utf8"
	"unsafe"

	"github.com/npillmayer/hanzime"
)

// BufSize is the size of the query and reply buffers.
const BufSize = hanzime.Capacity

var (
	// In receives the query from the host.
	In [BufSize]byte
	// Out receives the reply for the host.
	Out    [BufSize]byte
	outPos int
)

// TraceHook receives trace codes of the engine, if set.
var TraceHook func(code int32)

// Query returns the first n bytes of In as a string, or "" if they are not
// valid UTF-8. The string aliases In and is valid until the host writes
// to In again.
func Query(n int) string {
	n = max(0, min(n, BufSize))
	if n == 0 || !utf8.Valid(In[:n]) {
		return ""
	}
	return unsafe.String(&In[0], n)
}

// Rewind resets the Out buffer position to zero.
func Rewind() {
	outPos = 0
}

// Position returns the number of bytes written to Out.
func Position() int {
	return outPos
}

// Reply returns the contents of Out, or "" if they are not valid UTF-8.
func Reply() string {
	if !utf8.Valid(Out[:outPos]) {
		return ""
	}
	return string(Out[:outPos])
}

// Translate translates the query of n bytes in In with engine e and places
// the result in Out. It returns the number of bytes in Out.
func Translate(e *hanzime.Engine, n int) int {
	Rewind()
	e.Translate(Query(n), outSink{})
	return outPos
}

// outSink writes to Out, silently dropping text beyond BufSize.
type outSink struct{}

func (outSink) WriteString(text string) {
	outPos += copy(Out[outPos:], text)
}

func (outSink) Trace(code hanzime.TraceCode) {
	if TraceHook != nil {
		TraceHook(int32(code))
	}
}

func (outSink) String() string {
	return Reply()
}
