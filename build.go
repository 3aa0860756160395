package hanzime

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Errors reported when building or validating a dictionary.
var (
	ErrHashCollision  = errors.New("hanzime: hash collision between dictionary keys")
	ErrTooManyChoices = errors.New("hanzime: too many alternatives for a key")
	ErrUnsortedKeys   = errors.New("hanzime: dictionary keys are not sorted")
	ErrInvalidKey     = errors.New("hanzime: invalid dictionary key")
)

// EntryReader yields vocabulary entries one-by-one, as pairs of normalized
// pinyin and hanzi. It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (pinyin string, hanzi string, err error)
}

// BuildDictionary compiles vocabulary entries from a streaming source into
// a dictionary. Hanzi sharing the same pinyin become alternatives of one
// entry, in the order they are read. Keys are hashed with seed.
//
// Building fails if two different keys hash to the same value; retry with a
// different seed in that case.
//
// File format parsing is outside this package. Use adapters like package
// vocab to parse concrete formats and feed this API.
func BuildDictionary(name string, seed uint32, reader EntryReader) (*Dictionary, error) {
	type group struct {
		pinyin string
		hanzi  []string
		key    uint32
	}
	var groups []*group
	byPinyin := make(map[string]*group)
	for {
		pinyin, hanzi, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if pinyin == "" || strings.ContainsRune(pinyin, ChoiceSeparator) || !utf8.ValidString(pinyin) {
			return nil, fmt.Errorf("pinyin %q for %q: %w", pinyin, hanzi, ErrInvalidKey)
		}
		if hanzi == "" || strings.ContainsRune(hanzi, ChoiceSeparator) {
			return nil, fmt.Errorf("invalid word %q for pinyin %q", hanzi, pinyin)
		}
		g := byPinyin[pinyin]
		if g == nil {
			g = &group{pinyin: pinyin, key: Sum32(pinyin, seed)}
			byPinyin[pinyin] = g
			groups = append(groups, g)
		}
		if slices.Contains(g.hanzi, hanzi) {
			tracer().Debugf("dropping duplicate %q for pinyin %q", hanzi, pinyin)
			continue
		}
		if len(g.hanzi) == MaxChoices {
			return nil, fmt.Errorf("pinyin %q has more than %d alternatives: %w",
				pinyin, MaxChoices, ErrTooManyChoices)
		}
		g.hanzi = append(g.hanzi, hanzi)
	}
	slices.SortStableFunc(groups, func(a, b *group) int {
		return cmp.Compare(a.key, b.key)
	})
	dict := &Dictionary{
		Identifier: fmt.Sprintf("hanzi: %s", name),
		Seed:       seed,
		Keys:       make([]uint32, len(groups)),
		Entries:    make([]string, len(groups)),
	}
	for i, g := range groups {
		if i > 0 && groups[i-1].key == g.key {
			return nil, fmt.Errorf("%q and %q (seed %#x): %w",
				groups[i-1].pinyin, g.pinyin, seed, ErrHashCollision)
		}
		dict.Keys[i] = g.key
		dict.Entries[i] = strings.Join(g.hanzi, string(ChoiceSeparator))
		dict.MaxPhraseLen = max(dict.MaxPhraseLen, utf8.RuneCountInString(g.pinyin))
		dict.MaxChoices = max(dict.MaxChoices, len(g.hanzi))
	}
	tracer().Infof("dictionary %s: %d keys, max phrase length %d, max choices %d, fingerprint %#016x",
		name, dict.Size(), dict.MaxPhraseLen, dict.MaxChoices, dict.Fingerprint())
	return dict, nil
}

// Fingerprint returns a 64-bit xxhash over the seed, keys and entries of
// the dictionary. Two dictionaries with equal fingerprints translate queries
// identically.
func (dict *Dictionary) Fingerprint() uint64 {
	if dict == nil {
		return 0
	}
	d := xxhash.New()
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], dict.Seed)
	_, _ = d.Write(buf[:])
	for _, k := range dict.Keys {
		binary.LittleEndian.PutUint32(buf[:], k)
		_, _ = d.Write(buf[:])
	}
	for _, e := range dict.Entries {
		_, _ = d.WriteString(e)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
