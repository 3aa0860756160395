/*
Package vocab reads pinyin vocabulary lists.

A vocabulary list has one word per line, with the hanzi and the pinyin
separated by a tab character:

	# HSK 1
	爱	ài
	八	bā
	爸爸	bàba
	女儿	nǚ'ér

Lines starting with '#' and empty lines are ignored. Pinyin may be written
with tone marks or tone digits; the reader normalizes it to the form used for
dictionary keys (see NormalizePinyin).
*/
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'hanzime.vocab'
func tracer() tracing.Trace {
	return tracing.Select("hanzime.vocab")
}

// Reader streams vocabulary entries from a vocabulary list. It implements
// hanzime.EntryReader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a vocabulary reader for reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry as (normalized pinyin, hanzi).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hanzi, pinyin, found := strings.Cut(line, "\t")
		hanzi, pinyin = strings.TrimSpace(hanzi), strings.TrimSpace(pinyin)
		if !found || hanzi == "" || pinyin == "" {
			return "", "", fmt.Errorf("vocabulary line %d: expected <hanzi><TAB><pinyin>, have %q",
				r.line, line)
		}
		key := NormalizePinyin(pinyin)
		if key == "" {
			tracer().Infof("vocabulary line %d: skipping %q, pinyin %q has no letters", r.line, hanzi, pinyin)
			continue
		}
		return key, hanzi, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}

var umlauts = strings.NewReplacer(
	"ü", "v", "ǖ", "v", "ǘ", "v", "ǚ", "v", "ǜ", "v", "u:", "v",
)

// NormalizePinyin converts pinyin to the ASCII form typed by users:
// lower case, without tone marks, tone digits, spaces or apostrophes,
// and with 'v' in place of 'ü'.
//
//	"Nǚ'ér"    => "nver"
//	"guǒzhī"   => "guozhi"
//	"xiang3"   => "xiang"
func NormalizePinyin(pinyin string) string {
	s := umlauts.Replace(strings.ToLower(pinyin))
	stripTones := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if t, _, err := transform.String(stripTones, s); err == nil {
		s = t
	}
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r
		}
		return -1
	}, s)
}
