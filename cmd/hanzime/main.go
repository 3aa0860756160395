// Command hanzime translates pinyin queries into hanzi.
//
// Usage:
//
//	hanzime [-dict file.hzim] [-trace] [-suggest n] [query ...]
//
// Without query arguments, hanzime reads one query per line from standard
// input. With -demo it runs a few example queries.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/hanzime/dictfile"
	"github.com/npillmayer/hanzime/hsk"
	"github.com/npillmayer/hanzime/suggest"
	"github.com/npillmayer/hanzime/vocab"
)

var demoQueries = []string{
	"woxiangheguozhi",
	"woxiang heguozhi",
	"woxiang he guozhi",
	"woxianheguozhi11",
}

func main() {
	dictFlag := flag.String("dict", "", "binary dictionary file (default: bundled HSK dictionary)")
	traceFlag := flag.Bool("trace", false, "report internal trace codes")
	suggestFlag := flag.Int("suggest", 0, "print up to n completions for every query")
	demoFlag := flag.Bool("demo", false, "run example queries")
	flag.Parse()

	dict := hsk.Dictionary()
	if *dictFlag != "" {
		var err error
		if dict, err = dictfile.Open(*dictFlag); err != nil {
			log.Fatal(err)
		}
	}
	var completer *suggest.Suggester
	if *suggestFlag > 0 {
		if *dictFlag != "" {
			log.Fatal("-suggest requires the bundled dictionary")
		}
		var err error
		if completer, err = suggest.New(vocab.NewReader(hsk.Vocabulary())); err != nil {
			log.Fatal(err)
		}
	}
	t := &translator{
		engine:  hanzime.NewEngine(dict),
		trace:   *traceFlag,
		suggest: completer,
		limit:   *suggestFlag,
		out:     bufio.NewWriter(os.Stdout),
	}
	defer t.out.Flush()
	switch {
	case *demoFlag:
		for _, q := range demoQueries {
			t.translate(q)
		}
	case flag.NArg() > 0:
		t.translate(strings.Join(flag.Args(), " "))
	default:
		if err := t.translateLines(os.Stdin); err != nil {
			log.Fatal(err)
		}
	}
}

type translator struct {
	engine  *hanzime.Engine
	sink    hanzime.BufSink
	trace   bool
	suggest *suggest.Suggester
	limit   int
	out     *bufio.Writer
}

func (t *translator) translate(query string) {
	t.sink.Rewind()
	if t.trace {
		ts := &hanzime.TracingSink{Sink: &t.sink}
		t.engine.Translate(query, ts)
		if len(ts.Codes) > 0 {
			fmt.Fprintf(t.out, "trace codes: %v\n", ts.Codes)
		}
	} else {
		t.engine.Translate(query, &t.sink)
	}
	fmt.Fprintf(t.out, "\n%s\n%s\n", query, t.sink.String())
	if t.sink.Truncated() {
		fmt.Fprintln(t.out, "(output truncated)")
	}
	if t.suggest != nil {
		if fields := strings.Fields(query); len(fields) > 0 {
			for _, c := range t.suggest.Complete(fields[len(fields)-1], t.limit) {
				fmt.Fprintf(t.out, "  %s\n", c)
			}
		}
	}
}

func (t *translator) translateLines(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t.translate(scanner.Text())
	}
	return scanner.Err()
}
