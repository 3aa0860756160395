package hanzime

import (
	"fmt"
	"slices"
	"strings"
)

// ChoiceSeparator separates homophone alternatives within a dictionary entry.
const ChoiceSeparator = '\t'

// Dictionary is an immutable pinyin dictionary.
//
// Keys holds the murmur3 hashes (see Sum32) of normalized pinyin, sorted in
// ascending order. Entries is parallel to Keys: Entries[i] is the word for
// Keys[i], or a tab-separated list of homophones.
//
// Dictionaries are usually generated ahead of time (see package hsk). The
// query path does not re-validate the table; call Validate after loading
// a dictionary from an untrusted source.
type Dictionary struct {
	Identifier   string   // Identifies the dictionary
	Seed         uint32   // murmur3 seed used for Keys
	MaxPhraseLen int      // length of the longest key, in characters
	MaxChoices   int      // maximum number of alternatives of any entry
	Keys         []uint32 // sorted hash keys
	Entries      []string // words, parallel to Keys
}

// Size returns the number of entries in the dictionary.
func (dict *Dictionary) Size() int {
	if dict == nil {
		return 0
	}
	return len(dict.Entries)
}

// Entry returns entry i, or the empty string for an invalid index.
func (dict *Dictionary) Entry(i int) string {
	if dict == nil || i < 0 || i >= len(dict.Entries) {
		return ""
	}
	return dict.Entries[i]
}

// IsOpenChoice is true if entry i has more than one alternative.
func (dict *Dictionary) IsOpenChoice(i int) bool {
	return strings.IndexByte(dict.Entry(i), ChoiceSeparator) >= 0
}

// Choices returns the number of alternatives of entry i.
func (dict *Dictionary) Choices(i int) int {
	e := dict.Entry(i)
	if e == "" {
		return 0
	}
	return countChoices(e)
}

// Lookup searches for an exact match of pinyin key s.
func (dict *Dictionary) Lookup(s string) (int, bool) {
	if dict == nil || s == "" {
		return 0, false
	}
	i, found := slices.BinarySearch(dict.Keys, Sum32(s, dict.Seed))
	if !found || i >= len(dict.Entries) {
		return 0, false
	}
	return i, true
}

// LongestMatch finds the longest dictionary key in the character window
// start…end-1 of v. The window is capped at MaxPhraseLen characters.
// It returns the entry index and the (exclusive) end character position of
// the match.
func (dict *Dictionary) LongestMatch(v *View, start, end int) (entry int, matchEnd int, ok bool) {
	if dict == nil || v == nil {
		return 0, 0, false
	}
	end = min(end, v.Len(), start+dict.MaxPhraseLen)
	for ; end > start; end-- {
		s, avail := v.Slice(start, end)
		if !avail {
			continue
		}
		if i, found := dict.Lookup(s); found {
			return i, end, true
		}
	}
	return 0, 0, false
}

// Validate checks the build-time invariants of a dictionary: parallel key
// and entry tables, strictly increasing keys and at most MaxChoices
// alternatives per entry.
func (dict *Dictionary) Validate() error {
	if dict == nil {
		return fmt.Errorf("dictionary is nil")
	}
	if len(dict.Keys) != len(dict.Entries) {
		return fmt.Errorf("dictionary %q: %d keys for %d entries",
			dict.Identifier, len(dict.Keys), len(dict.Entries))
	}
	if len(dict.Keys) > 0 && dict.MaxPhraseLen < 1 {
		return fmt.Errorf("dictionary %q: invalid max phrase length %d",
			dict.Identifier, dict.MaxPhraseLen)
	}
	for i := 1; i < len(dict.Keys); i++ {
		if dict.Keys[i] == dict.Keys[i-1] {
			return fmt.Errorf("dictionary %q: key %d (%#x): %w",
				dict.Identifier, i, dict.Keys[i], ErrHashCollision)
		}
		if dict.Keys[i] < dict.Keys[i-1] {
			return fmt.Errorf("dictionary %q: key %d (%#x): %w",
				dict.Identifier, i, dict.Keys[i], ErrUnsortedKeys)
		}
	}
	for i, e := range dict.Entries {
		if e == "" {
			return fmt.Errorf("dictionary %q: entry %d is empty", dict.Identifier, i)
		}
		n := countChoices(e)
		if n > MaxChoices || (dict.MaxChoices > 0 && n > dict.MaxChoices) {
			return fmt.Errorf("dictionary %q: entry %d has %d alternatives: %w",
				dict.Identifier, i, n, ErrTooManyChoices)
		}
	}
	return nil
}

func countChoices(entry string) int {
	return strings.Count(entry, string(ChoiceSeparator)) + 1
}

// nthChoice returns alternative n (1-based) of entry.
func nthChoice(entry string, n int) (string, bool) {
	for i := 1; ; i++ {
		sep := strings.IndexByte(entry, ChoiceSeparator)
		if i == n {
			if sep < 0 {
				return entry, true
			}
			return entry[:sep], true
		}
		if sep < 0 {
			return "", false
		}
		entry = entry[sep+1:]
	}
}
