package hanzime

import "fmt"

// TokenKind is the type of a lexeme found in a query.
type TokenKind uint8

const (
	// Skip marks spaces and digits consumed by a lookahead. It is the zero
	// value and fills the unused part of a queue.
	Skip TokenKind = iota
	// SingleMatch is a clear pinyin match of a dictionary entry with one word.
	SingleMatch
	// OpenChoice is an ambiguous pinyin match of a set of homophones which
	// requires further input to resolve.
	OpenChoice
	// MaybeChoice is a space or a digit 1…9. It may resolve an open choice,
	// separate words or pass through unchanged.
	MaybeChoice
	// Other is any other character, e.g. upper case letters or emoji.
	Other
)

func (k TokenKind) String() string {
	switch k {
	case Skip:
		return "Skip"
	case SingleMatch:
		return "SingleMatch"
	case OpenChoice:
		return "OpenChoice"
	case MaybeChoice:
		return "MaybeChoice"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a lexeme of a query. Entry is valid for SingleMatch and
// OpenChoice, Char and Text for MaybeChoice and Other.
type Token struct {
	Kind  TokenKind
	Entry int    // index of the dictionary entry
	Char  rune   // the character
	Text  string // the character as it is to be rendered
}

func (tk Token) String() string {
	switch tk.Kind {
	case SingleMatch, OpenChoice:
		return fmt.Sprintf("%s(%d)", tk.Kind, tk.Entry)
	case MaybeChoice, Other:
		return fmt.Sprintf("%s(%q)", tk.Kind, tk.Char)
	}
	return tk.Kind.String()
}

// TokenQueue is an append-only queue of tokens with fixed capacity.
type TokenQueue struct {
	tokens [Capacity]Token
	count  int
}

// Push appends tk. It returns false if the queue is full.
func (q *TokenQueue) Push(tk Token) bool {
	if q.count >= len(q.tokens) {
		return false
	}
	q.tokens[q.count] = tk
	q.count++
	return true
}

// Len returns the number of tokens in the queue.
func (q *TokenQueue) Len() int {
	return q.count
}

// At returns token i. Tokens beyond Len are Skip tokens.
func (q *TokenQueue) At(i int) Token {
	if i < 0 || i >= q.count {
		return Token{}
	}
	return q.tokens[i]
}

// Reset empties the queue.
func (q *TokenQueue) Reset() {
	for i := range q.count {
		q.tokens[i] = Token{}
	}
	q.count = 0
}

// skip demotes token i to a Skip token.
func (q *TokenQueue) skip(i int) {
	if i >= 0 && i < q.count {
		q.tokens[i] = Token{Kind: Skip}
	}
}
