// Package hsk bundles a dictionary of HSK vocabulary for package hanzime.
//
// The dictionary tables in hsk_data.go are generated from vocab.tsv:
//
//	go generate ./hsk
//
// If generation fails because of a hash collision, choose a different seed.
package hsk

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/npillmayer/hanzime"
)

//go:generate go run ../cmd/gendict -seed 0x5eed -pkg hsk -o hsk_data.go vocab.tsv

//go:embed vocab.tsv
var vocabulary []byte

var dict = hanzime.Dictionary{
	Identifier:   "hanzi: hsk",
	Seed:         Seed,
	MaxPhraseLen: MaxPhraseLen,
	MaxChoices:   MaxChoices,
	Keys:         keys[:],
	Entries:      entries[:],
}

// Dictionary returns the bundled dictionary. It is shared and must not be
// modified.
func Dictionary() *hanzime.Dictionary {
	return &dict
}

// Vocabulary returns the vocabulary list the dictionary has been generated
// from, in the format of package vocab.
func Vocabulary() io.Reader {
	return bytes.NewReader(vocabulary)
}

// Query translates q with the bundled dictionary.
func Query(q string) string {
	return hanzime.Query(&dict, q)
}
