/*
Package hanzime converts ASCII pinyin into Chinese characters (hanzi), in the
manner of an input method editor.

Queries are matched against a precomputed static dictionary. Keys of the
dictionary are murmur3 hashes of normalized pinyin; entries are either a
single word or a tab-separated list of homophones. A greedy longest-match
scan splits a query into tokens, and a single forward pass resolves
homophone choices by looking ahead for a space or a digit 1…9:

	"xiang"   => " (1想 2向) "
	"xiang2"  => "向"
	"xiang "  => "想"
	"wo xiang he guozhi" => "我想喝果汁"

The query path is bounded and allocation-free: views, token queues and
output buffers are fixed-size arrays of Capacity elements. Input beyond
Capacity characters is silently truncated, output beyond Capacity bytes is
silently dropped. Conditions which should be unreachable are reported as
trace codes to the output sink; the engine never panics.

Dictionaries are produced ahead of time (see package hsk for the bundled
one, and command gendict). BuildDictionary is available for clients which
want to assemble a dictionary at runtime.

Further Reading

	https://en.wikipedia.org/wiki/Input_method
	https://github.com/aappleby/smhasher   (murmur3)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package hanzime

import (
	"github.com/npillmayer/schuko/tracing"
)

// Capacity is the number of characters a query may have, the number of
// tokens a queue may hold and the number of bytes a BufSink may hold.
const Capacity = 150

// MaxChoices is the maximum number of homophone alternatives per entry.
// Choices are picked with a single digit.
const MaxChoices = 9

// tracer writes to trace with key 'hanzime'
func tracer() tracing.Trace {
	return tracing.Select("hanzime")
}
