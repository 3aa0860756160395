package ipcmem

import (
	"strings"
	"testing"

	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/hanzime/hsk"
	"github.com/stretchr/testify/assert"
)

func setQuery(q string) int {
	return copy(In[:], q)
}

func TestTranslate(t *testing.T) {
	e := hanzime.NewEngine(hsk.Dictionary())
	n := Translate(e, setQuery("xianghe 1"))
	assert.Equal(t, len("想喝"), n)
	assert.Equal(t, n, Position())
	assert.Equal(t, "想喝", Reply())
	n = Translate(e, setQuery("xiang"))
	assert.Equal(t, " (1想 2向) ", string(Out[:n]))
	Rewind()
	assert.Equal(t, 0, Position())
	assert.Equal(t, "", Reply())
}

func TestQueryBounds(t *testing.T) {
	n := setQuery("wo")
	assert.Equal(t, "wo", Query(n))
	assert.Equal(t, "", Query(0))
	assert.Equal(t, "", Query(-5))
	setQuery(strings.Repeat("a", BufSize))
	assert.Len(t, Query(BufSize+10), BufSize)
	In[0] = 0xff
	assert.Equal(t, "", Query(1))
}

func TestReplyIsTruncated(t *testing.T) {
	e := hanzime.NewEngine(hsk.Dictionary())
	var codes []int32
	TraceHook = func(code int32) { codes = append(codes, code) }
	defer func() { TraceHook = nil }()
	n := Translate(e, setQuery(strings.Repeat("xiang", 30)))
	assert.Equal(t, BufSize, n)
	assert.Empty(t, codes)
}
