package hanzime

import "unicode/utf8"

// scan searches for dictionary matches in characters start…end-1 of v and
// pushes tokens into q, left to right. At every position the longest
// match wins; characters without a match become tokens of their own.
func scan(dict *Dictionary, v *View, start, end int, q *TokenQueue, sink Sink) {
	for start < end {
		windowEnd := end
		if dict != nil {
			windowEnd = min(start+dict.MaxPhraseLen, end)
		}
		if i, matchEnd, ok := dict.LongestMatch(v, start, windowEnd); ok {
			tk := Token{Kind: SingleMatch, Entry: i}
			if dict.IsOpenChoice(i) {
				tk.Kind = OpenChoice
			}
			push(q, tk, sink)
			start = matchEnd
			continue
		}
		// No match: push one character and continue after it
		s, ok := v.Slice(start, start+1)
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			s = "\uFFFD"
		}
		switch {
		case !ok || size == 0:
			sink.Trace(TraceEmptySlice)
		case isMaybeChoice(r):
			// Spaces and digits may resolve the choice of an earlier open
			// choice, may separate words, or pass through as they are.
			push(q, Token{Kind: MaybeChoice, Char: r, Text: s}, sink)
		default:
			push(q, Token{Kind: Other, Char: r, Text: s}, sink)
		}
		start++
	}
}

func push(q *TokenQueue, tk Token, sink Sink) {
	if !q.Push(tk) {
		sink.Trace(TraceQueueFull)
	}
}

func isMaybeChoice(r rune) bool {
	return r == ' ' || ('1' <= r && r <= '9')
}
