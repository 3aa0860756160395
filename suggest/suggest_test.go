package suggest

import (
	"testing"

	"github.com/npillmayer/hanzime/hsk"
	"github.com/npillmayer/hanzime/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHSKSuggester(t *testing.T) *Suggester {
	t.Helper()
	s, err := New(vocab.NewReader(hsk.Vocabulary()))
	require.NoError(t, err)
	return s
}

func TestComplete(t *testing.T) {
	s := newHSKSuggester(t)
	assert.Equal(t, hsk.Size, s.Size())
	completions := s.Complete("xia", 3)
	require.Len(t, completions, 3)
	assert.Equal(t, Completion{Pinyin: "xia", Hanzi: []string{"下"}}, completions[0])
	assert.Equal(t, Completion{Pinyin: "xiao", Hanzi: []string{"小", "笑"}}, completions[1])
	assert.Equal(t, "xiang 想/向", completions[2].String())
	assert.Len(t, s.Complete("xia", 0), 9)
}

func TestCompleteNormalizesPrefix(t *testing.T) {
	s := newHSKSuggester(t)
	assert.Equal(t, s.Complete("hao", 0), s.Complete("HǍO", 0))
	completions := s.Complete("Ni3", 0)
	require.NotEmpty(t, completions)
	assert.Equal(t, "ni", completions[0].Pinyin)
}

func TestCompleteWithoutMatch(t *testing.T) {
	s := newHSKSuggester(t)
	assert.Empty(t, s.Complete("xyz", 10))
	assert.Empty(t, s.Complete("", 10))
	assert.Empty(t, s.Complete("🐇", 10))
}

func TestCompletionsAreCopies(t *testing.T) {
	s := newHSKSuggester(t)
	c := s.Complete("xiang", 1)
	require.Len(t, c, 1)
	c[0].Hanzi[0] = "x"
	assert.Equal(t, []string{"想", "向"}, s.Complete("xiang", 1)[0].Hanzi)
}
