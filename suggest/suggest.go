// Package suggest completes partially typed pinyin, e.g., to show
// candidate words while a user is still typing a query.
package suggest

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/hanzime/vocab"
)

// Completion is a pinyin key together with its words.
type Completion struct {
	Pinyin string
	Hanzi  []string
}

func (c Completion) String() string {
	return c.Pinyin + " " + strings.Join(c.Hanzi, "/")
}

// Suggester holds a prefix tree of pinyin keys.
type Suggester struct {
	keys *trie.Trie
	size int
}

// New builds a suggester from vocabulary entries.
func New(reader hanzime.EntryReader) (*Suggester, error) {
	s := &Suggester{keys: trie.New()}
	for {
		pinyin, hanzi, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if node, ok := s.keys.Find(pinyin); ok {
			c := node.Meta().(*Completion)
			if !slices.Contains(c.Hanzi, hanzi) {
				c.Hanzi = append(c.Hanzi, hanzi)
			}
			continue
		}
		s.keys.Add(pinyin, &Completion{Pinyin: pinyin, Hanzi: []string{hanzi}})
		s.size++
	}
	return s, nil
}

// Size returns the number of pinyin keys.
func (s *Suggester) Size() int {
	return s.size
}

// Complete returns up to limit completions for prefix, shortest keys first.
// Prefix is normalized like vocabulary pinyin. A limit <= 0 means no limit.
func (s *Suggester) Complete(prefix string, limit int) []Completion {
	prefix = vocab.NormalizePinyin(prefix)
	if prefix == "" {
		return nil
	}
	keys := s.keys.PrefixSearch(prefix)
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	completions := make([]Completion, 0, len(keys))
	for _, k := range keys {
		if node, ok := s.keys.Find(k); ok {
			c := node.Meta().(*Completion)
			completions = append(completions, Completion{Pinyin: c.Pinyin, Hanzi: slices.Clone(c.Hanzi)})
		}
	}
	return completions
}
