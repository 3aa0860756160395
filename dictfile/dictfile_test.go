package dictfile

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/hanzime/hsk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, dict *hanzime.Dictionary) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, dict))
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	dict := hsk.Dictionary()
	decoded, err := Decode(encode(t, dict))
	require.NoError(t, err)
	assert.Equal(t, dict.Identifier, decoded.Identifier)
	assert.Equal(t, dict.Seed, decoded.Seed)
	assert.Equal(t, dict.MaxPhraseLen, decoded.MaxPhraseLen)
	assert.Equal(t, dict.MaxChoices, decoded.MaxChoices)
	assert.Equal(t, dict.Fingerprint(), decoded.Fingerprint())
	assert.Equal(t, hsk.Query("wo xiang he guozhi"), hanzime.Query(decoded, "wo xiang he guozhi"))
}

func TestCreateOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hsk.hzim")
	require.NoError(t, Create(path, hsk.Dictionary()))
	dict, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, hsk.Dictionary().Fingerprint(), dict.Fingerprint())
	assert.Equal(t, "想喝", hanzime.Query(dict, "xianghe 1"))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.hzim"))
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	data := encode(t, hsk.Dictionary())

	_, err := Decode(data[:10])
	assert.ErrorIs(t, err, ErrTruncatedFile)

	_, err = Decode(data[:len(data)-1])
	assert.ErrorIs(t, err, ErrTruncatedFile)

	_, err = Decode(append(bytes.Clone(data), 0))
	assert.ErrorIs(t, err, ErrCorrupted)

	bad := bytes.Clone(data)
	bad[0] = 'X'
	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrInvalidMagic)

	bad = bytes.Clone(data)
	bad[4] = 2
	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrInvalidVersion)

	bad = bytes.Clone(data)
	bad[len(bad)-footerSize-1] ^= 0xff
	_, err = Decode(bad)
	assert.ErrorIs(t, err, ErrChecksumFailed)
}

func TestWriteRejectsInvalidDictionary(t *testing.T) {
	dict := &hanzime.Dictionary{
		Identifier:   "broken",
		MaxPhraseLen: 2,
		Keys:         []uint32{2, 1},
		Entries:      []string{"一", "二"},
	}
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, dict), hanzime.ErrUnsortedKeys)
}
