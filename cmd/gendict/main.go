// Command gendict compiles a pinyin vocabulary list into a static
// dictionary for package hanzime.
//
// Usage:
//
//	gendict [-seed 0x5eed] [-pkg hsk] [-o hsk_data.go] [-bin hsk.hzim] vocab.tsv
//
// The Go output declares sorted murmur3 keys and parallel entries, suitable
// for wrapping into a hanzime.Dictionary without any work at init time.
// With -bin, the dictionary is additionally written in the binary format of
// package dictfile.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/hanzime/dictfile"
	"github.com/npillmayer/hanzime/vocab"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hanzime.gendict'
func tracer() tracing.Trace {
	return tracing.Select("hanzime.gendict")
}

func main() {
	seedFlag := flag.String("seed", "0x5eed", "murmur3 seed for the pinyin keys")
	pkgFlag := flag.String("pkg", "hsk", "package name of the generated Go file")
	outFlag := flag.String("o", "", "output Go file (default stdout)")
	binFlag := flag.String("bin", "", "optional output file for the binary dictionary")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gendict [flags] vocab.tsv")
		flag.PrintDefaults()
		os.Exit(2)
	}
	seed, err := strconv.ParseUint(*seedFlag, 0, 32)
	if err != nil {
		log.Fatalf("invalid seed %q: %v", *seedFlag, err)
	}
	vocabPath := flag.Arg(0)
	pairs, err := readVocabulary(vocabPath)
	if err != nil {
		log.Fatal(err)
	}
	name := filepath.Base(vocabPath)
	dict, err := hanzime.BuildDictionary(name, uint32(seed), &pairReader{pairs: pairs})
	if err != nil {
		log.Fatalf("cannot build dictionary from %s: %v", vocabPath, err)
	}
	src, err := generate(*pkgFlag, name, dict, pairs)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeOutput(*outFlag, src); err != nil {
		log.Fatal(err)
	}
	if *binFlag != "" {
		if err := dictfile.Create(*binFlag, dict); err != nil {
			log.Fatal(err)
		}
	}
	tracer().Infof("generated %d entries from %s", dict.Size(), vocabPath)
}

type pair struct {
	pinyin, hanzi string
}

// pairReader replays vocabulary entries for hanzime.BuildDictionary.
type pairReader struct {
	pairs []pair
	index int
}

func (r *pairReader) Next() (string, string, error) {
	if r.index >= len(r.pairs) {
		return "", "", io.EOF
	}
	p := r.pairs[r.index]
	r.index++
	return p.pinyin, p.hanzi, nil
}

func readVocabulary(path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var pairs []pair
	r := vocab.NewReader(f)
	for {
		pinyin, hanzi, err := r.Next()
		if err == io.EOF {
			return pairs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		pairs = append(pairs, pair{pinyin: pinyin, hanzi: hanzi})
	}
}

type row struct {
	Key    uint32
	Pinyin string
	Hanzi  string
}

var source = template.Must(template.New("dict").Parse(`// Code generated by gendict from {{.Source}}; DO NOT EDIT.

package {{.Package}}

// Seed is the murmur3 seed of the pinyin keys.
const Seed = 0x{{printf "%08x" .Seed}}

// MaxPhraseLen is the length of the longest pinyin key, in characters.
const MaxPhraseLen = {{.MaxPhraseLen}}

// MaxChoices is the largest number of homophones sharing one pinyin key.
const MaxChoices = {{.MaxChoices}}

// Size is the number of dictionary entries.
const Size = {{len .Rows}}

// keys are the murmur3 hashes of the pinyin keys, in ascending order.
var keys = [Size]uint32{
{{- range .Rows}}
	0x{{printf "%08x" .Key}}, // {{.Pinyin}}
{{- end}}
}

// entries are the words for keys, homophones separated by tabs.
var entries = [Size]string{
{{- range .Rows}}
	{{printf "%q" .Hanzi}},
{{- end}}
}
`))

func generate(pkg, name string, dict *hanzime.Dictionary, pairs []pair) ([]byte, error) {
	pinyin := make(map[uint32]string, len(pairs))
	for _, p := range pairs {
		pinyin[hanzime.Sum32(p.pinyin, dict.Seed)] = p.pinyin
	}
	rows := make([]row, dict.Size())
	for i := range rows {
		rows[i] = row{Key: dict.Keys[i], Pinyin: pinyin[dict.Keys[i]], Hanzi: dict.Entries[i]}
	}
	var buf bytes.Buffer
	err := source.Execute(&buf, struct {
		Source       string
		Package      string
		Seed         uint32
		MaxPhraseLen int
		MaxChoices   int
		Rows         []row
	}{name, pkg, dict.Seed, dict.MaxPhraseLen, dict.MaxChoices, rows})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func writeOutput(path string, src []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(path, src, 0o644)
}
