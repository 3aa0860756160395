package hanzime

import (
	"strings"
	"testing"
)

func TestBufSinkTruncates(t *testing.T) {
	var sink BufSink
	sink.WriteString(strings.Repeat("a", Capacity-1))
	if sink.Truncated() {
		t.Fatalf("sink should not be truncated yet")
	}
	sink.WriteString("bc")
	if !sink.Truncated() || sink.Len() != Capacity {
		t.Fatalf("expected truncation at %d bytes, have %d", Capacity, sink.Len())
	}
	if sink.String() != strings.Repeat("a", Capacity-1)+"b" {
		t.Fatalf("unexpected buffer contents %q", sink.String())
	}
	sink.Rewind()
	if sink.Len() != 0 || sink.Truncated() || sink.String() != "" {
		t.Fatalf("expected empty sink after Rewind")
	}
	sink.WriteString("你好")
	if string(sink.Bytes()) != "你好" {
		t.Fatalf("expected '你好' after Rewind, have %q", sink.Bytes())
	}
}

func TestBufSinkSplitCharacter(t *testing.T) {
	var sink BufSink
	sink.WriteString(strings.Repeat("a", Capacity-1))
	sink.WriteString("好") // 3 bytes, only 1 fits
	if sink.Len() != Capacity {
		t.Fatalf("expected %d bytes, have %d", Capacity, sink.Len())
	}
	if sink.String() != "" {
		t.Fatalf("invalid UTF-8 should render as empty string, have %q", sink.String())
	}
}

func TestTracingSink(t *testing.T) {
	var buf BufSink
	sink := &TracingSink{Sink: &buf}
	sink.WriteString("我")
	sink.Trace(TraceQueueFull)
	sink.Trace(TraceEmptySlice)
	if sink.String() != "我" {
		t.Fatalf("expected text to be forwarded, have %q", sink.String())
	}
	if len(sink.Codes) != 2 || sink.Codes[0] != TraceQueueFull || sink.Codes[1] != TraceEmptySlice {
		t.Fatalf("expected trace codes to be recorded, have %v", sink.Codes)
	}
	empty := &TracingSink{}
	empty.WriteString("x")
	empty.Trace(TraceNotOpenChoice)
	if empty.String() != "" || len(empty.Codes) != 1 {
		t.Fatalf("tracing sink without a target should only record codes")
	}
}
