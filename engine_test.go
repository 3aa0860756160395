package hanzime

import (
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	dict := newTestDictionary(t)
	tests := []struct {
		query, out string
	}{
		{"", ""},
		{" ", " "},
		{"1", "1"},
		{"nihao", "你好"},
		{"ni hao", "你好"},
		{"ni hao ", "你好"},
		{"ma", " (1吗 2妈 3马) "},
		{"ma3", "马"},
		{"ma9", " (1吗 2妈 3马) 9"},
		{"ma 2", "吗2"},
		{"ma22", "妈2"},
		{"ma4 1", "吗41"},
		{"hao ma?", "好 (1吗 2妈 3马) ?"},
		{"ma 🐇", "吗🐇"},
		{"NIHAO", "NIHAO"},
		{"guo zhi", "过汁"},
		{"xiangguozhi", " (1想 2向) 果汁"},
		{"woxiangheguozhi", "我 (1想 2向)  (1喝 2和) 果汁"},
		{"wo xiang2 he1 guozhi", "我向 喝 果汁"},
		{"wo\xffni", "我�你"},
	}
	engine := NewEngine(dict)
	var sink BufSink
	for _, tt := range tests {
		sink.Rewind()
		engine.Translate(tt.query, &sink)
		if sink.String() != tt.out {
			t.Errorf("Translate(%q) = %q, want %q", tt.query, sink.String(), tt.out)
		}
	}
}

func TestTokens(t *testing.T) {
	dict := newTestDictionary(t)
	nihao, _ := dict.Lookup("nihao")
	ni, _ := dict.Lookup("ni")
	hao, _ := dict.Lookup("hao")
	ma, _ := dict.Lookup("ma")
	engine := NewEngine(dict)
	tokens := engine.Tokens("nihao")
	if len(tokens) != 1 || tokens[0] != (Token{Kind: SingleMatch, Entry: nihao}) {
		t.Fatalf("expected greedy match of 'nihao', have %v", tokens)
	}
	tokens = engine.Tokens("ni hao ma!")
	want := []Token{
		{Kind: SingleMatch, Entry: ni},
		{Kind: MaybeChoice, Char: ' ', Text: " "},
		{Kind: SingleMatch, Entry: hao},
		{Kind: MaybeChoice, Char: ' ', Text: " "},
		{Kind: OpenChoice, Entry: ma},
		{Kind: Other, Char: '!', Text: "!"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, have %v", len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d is %v, want %v", i, tokens[i], want[i])
		}
	}
}

func TestTranslateIgnoresCharactersBeyondCapacity(t *testing.T) {
	dict := newTestDictionary(t)
	queries := []string{
		strings.Repeat("A", Capacity+1),
		strings.Repeat("ma", Capacity),
		strings.Repeat("你", Capacity) + "hao",
		strings.Repeat("wo ", 60),
	}
	for _, q := range queries {
		short := string([]rune(q)[:Capacity])
		if Query(dict, q) != Query(dict, short) {
			t.Errorf("query %.20q… should ignore characters after %d", q, Capacity)
		}
	}
	if out := Query(dict, strings.Repeat("A", Capacity+1)); out != strings.Repeat("A", Capacity) {
		t.Errorf("expected %d 'A's, have %d bytes", Capacity, len(out))
	}
}

func TestScanTraces(t *testing.T) {
	dict := newTestDictionary(t)
	sink := &recordingSink{}
	q := &TokenQueue{}
	scan(dict, NewView("wo"), 0, 4, q, sink)
	if q.Len() != 1 {
		t.Fatalf("expected 1 token, have %d", q.Len())
	}
	if len(sink.codes) != 2 || sink.codes[0] != TraceEmptySlice {
		t.Fatalf("expected two empty slice traces, have %v", sink.codes)
	}
	//
	sink = &recordingSink{}
	q.Reset()
	for range Capacity {
		q.Push(Token{Kind: Other, Char: 'x', Text: "x"})
	}
	scan(dict, NewView("wo!"), 0, 3, q, sink)
	if q.Len() != Capacity {
		t.Fatalf("queue should stay at capacity, has %d tokens", q.Len())
	}
	if len(sink.codes) != 2 || sink.codes[0] != TraceQueueFull || sink.codes[1] != TraceQueueFull {
		t.Fatalf("expected two queue full traces, have %v", sink.codes)
	}
}

func TestTranslateWithoutDictionary(t *testing.T) {
	if out := Query(nil, "wo 1"); out != "wo 1" {
		t.Fatalf("without dictionary, query should pass through, have %q", out)
	}
}

func TestTranslateDoesNotAllocate(t *testing.T) {
	dict := newTestDictionary(t)
	engine := NewEngine(dict)
	sink := &BufSink{}
	queries := []string{"woxiangheguozhi", "ma3 🐇", "wo xiang2 he1 guozhi"}
	allocs := testing.AllocsPerRun(100, func() {
		for _, q := range queries {
			sink.Rewind()
			engine.Translate(q, sink)
		}
	})
	if allocs != 0 {
		t.Fatalf("expected no allocations, have %.1f per run", allocs)
	}
}
