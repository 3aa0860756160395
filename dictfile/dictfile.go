/*
Package dictfile stores hanzime dictionaries in a compact binary format,
for hosts which load dictionaries at runtime instead of compiling them in.

Layout (all integers little-endian):

	header     magic "HZIM", version u16, identifier length u16,
	           seed u32, max phrase length u16, max choices u16,
	           entry count u32, blob size u32
	identifier UTF-8
	keys       count × u32, ascending
	offsets    (count+1) × u32, offsets of entries into blob
	blob       UTF-8 entries, homophones separated by tabs
	footer     xxhash64 of everything before the footer

Open memory-maps a file, verifies and decodes it. The resulting dictionary
does not reference the mapping.
*/
package dictfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hanzime.dictfile'
func tracer() tracing.Trace {
	return tracing.Select("hanzime.dictfile")
}

const (
	magic      = "HZIM"
	version    = 1
	headerSize = 24
	footerSize = 8
)

type header struct {
	identLen     uint16
	seed         uint32
	maxPhraseLen uint16
	maxChoices   uint16
	count        uint32
	blobSize     uint32
}

func (h *header) encode(buf []byte) {
	copy(buf[0:4], magic)
	binary.LittleEndian.PutUint16(buf[4:6], version)
	binary.LittleEndian.PutUint16(buf[6:8], h.identLen)
	binary.LittleEndian.PutUint32(buf[8:12], h.seed)
	binary.LittleEndian.PutUint16(buf[12:14], h.maxPhraseLen)
	binary.LittleEndian.PutUint16(buf[14:16], h.maxChoices)
	binary.LittleEndian.PutUint32(buf[16:20], h.count)
	binary.LittleEndian.PutUint32(buf[20:24], h.blobSize)
}

func decodeHeader(buf []byte) (*header, error) {
	if string(buf[0:4]) != magic {
		return nil, ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint16(buf[4:6]); v != version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, v)
	}
	return &header{
		identLen:     binary.LittleEndian.Uint16(buf[6:8]),
		seed:         binary.LittleEndian.Uint32(buf[8:12]),
		maxPhraseLen: binary.LittleEndian.Uint16(buf[12:14]),
		maxChoices:   binary.LittleEndian.Uint16(buf[14:16]),
		count:        binary.LittleEndian.Uint32(buf[16:20]),
		blobSize:     binary.LittleEndian.Uint32(buf[20:24]),
	}, nil
}

// Write encodes dict to w.
func Write(w io.Writer, dict *hanzime.Dictionary) error {
	if err := dict.Validate(); err != nil {
		return err
	}
	blobSize := 0
	for _, e := range dict.Entries {
		blobSize += len(e)
	}
	if len(dict.Identifier) > math.MaxUint16 || uint64(blobSize) > math.MaxUint32 ||
		dict.MaxPhraseLen > math.MaxUint16 || dict.MaxChoices > math.MaxUint16 {
		return fmt.Errorf("dictionary %q too large for binary format", dict.Identifier)
	}
	h := header{
		identLen:     uint16(len(dict.Identifier)),
		seed:         dict.Seed,
		maxPhraseLen: uint16(dict.MaxPhraseLen),
		maxChoices:   uint16(dict.MaxChoices),
		count:        uint32(len(dict.Keys)),
		blobSize:     uint32(blobSize),
	}
	digest := xxhash.New()
	bw := bufio.NewWriter(io.MultiWriter(w, digest))
	var buf [headerSize]byte
	h.encode(buf[:])
	bw.Write(buf[:])
	bw.WriteString(dict.Identifier)
	for _, k := range dict.Keys {
		binary.LittleEndian.PutUint32(buf[:4], k)
		bw.Write(buf[:4])
	}
	offset := uint32(0)
	for _, e := range dict.Entries {
		binary.LittleEndian.PutUint32(buf[:4], offset)
		bw.Write(buf[:4])
		offset += uint32(len(e))
	}
	binary.LittleEndian.PutUint32(buf[:4], offset)
	bw.Write(buf[:4])
	for _, e := range dict.Entries {
		bw.WriteString(e)
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf[:8], digest.Sum64())
	_, err := w.Write(buf[:8])
	return err
}

// Decode decodes a binary dictionary. The dictionary does not reference data.
func Decode(data []byte) (*hanzime.Dictionary, error) {
	if len(data) < headerSize+footerSize {
		return nil, ErrTruncatedFile
	}
	h, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	n := int(h.count)
	size := headerSize + int(h.identLen) + 4*n + 4*(n+1) + int(h.blobSize) + footerSize
	if len(data) < size {
		return nil, fmt.Errorf("%w: have %d bytes, header requires %d", ErrTruncatedFile, len(data), size)
	}
	if len(data) > size {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupted, len(data)-size)
	}
	body := data[:size-footerSize]
	if xxhash.Sum64(body) != binary.LittleEndian.Uint64(data[size-footerSize:]) {
		return nil, ErrChecksumFailed
	}
	pos := headerSize
	ident := string(body[pos : pos+int(h.identLen)])
	pos += int(h.identLen)
	dict := &hanzime.Dictionary{
		Identifier:   ident,
		Seed:         h.seed,
		MaxPhraseLen: int(h.maxPhraseLen),
		MaxChoices:   int(h.maxChoices),
		Keys:         make([]uint32, n),
		Entries:      make([]string, n),
	}
	for i := range dict.Keys {
		dict.Keys[i] = binary.LittleEndian.Uint32(body[pos:])
		pos += 4
	}
	offsets := body[pos : pos+4*(n+1)]
	blob := body[pos+4*(n+1):]
	for i := range dict.Entries {
		from := binary.LittleEndian.Uint32(offsets[4*i:])
		to := binary.LittleEndian.Uint32(offsets[4*i+4:])
		if from > to || int(to) > len(blob) {
			return nil, fmt.Errorf("%w: entry %d has invalid range %d…%d", ErrCorrupted, i, from, to)
		}
		e := blob[from:to]
		if !utf8.Valid(e) {
			return nil, fmt.Errorf("%w: entry %d is not valid UTF-8", ErrCorrupted, i)
		}
		dict.Entries[i] = string(e)
	}
	if err := dict.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}
	return dict, nil
}

// Open reads a binary dictionary file by memory-mapping it.
func Open(path string) (*hanzime.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary file: %w", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dictionary file: %w", err)
	}
	if info.Size() < headerSize+footerSize {
		return nil, ErrTruncatedFile
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap dictionary file: %w", err)
	}
	defer func() {
		if err := m.Unmap(); err != nil {
			tracer().Errorf("unmap %s: %v", path, err)
		}
	}()
	dict, err := Decode(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded dictionary %q from %s: %d entries", dict.Identifier, path, dict.Size())
	return dict, nil
}

// Create writes dict to a new file at path.
func Create(path string, dict *hanzime.Dictionary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, dict); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
