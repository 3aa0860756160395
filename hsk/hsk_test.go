package hsk_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/hanzime/hsk"
	"github.com/npillmayer/hanzime/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		query, out string
	}{
		{"", ""},
		{"1", "1"},
		{"xiang", " (1想 2向) "},
		{"xiang1", "想"},
		{"xiang2", "向"},
		{"xiang ", "想"},
		{" xiang", "  (1想 2向) "},
		{"xiang9", " (1想 2向) 9"},
		{"xiang3 ", "想3"},
		{"xianghe", " (1想 2向)  (1喝 2和) "},
		{"xiang1he", "想 (1喝 2和) "},
		{"xianghe1", "想 (1喝 2和) "},
		{"xianghe ", "想 (1喝 2和) "},
		{"xianghe 1", "想喝"},
		{"xianghe11", "想喝"},
		{"xiang he1", "想喝"},
		{"xiang he ", "想喝"},
		{"xianghe 2", "想和"},
		{"zhang", " (1张 2长) "},
		{"chang", " (1长 2唱) "},
		{"kunchong", "昆虫"},
		{"kun chong", "困冲"},
		{"kun chong ", "困冲"},
		{"wo xiang he guozhi", "我想喝果汁"},
		{"woxiangheguozhi", "我 (1想 2向)  (1喝 2和) 果汁"},
		{"woxianheguozhi11", "我下n喝果汁1"},
		{"baiSEde🐇✨11", "白SE的🐇✨"},
		{"🐇✨", "🐇✨"},
		{"RABBIT SPARKLES 11", "RABBIT SPARKLES 11"},
		{"XIANGHE", "XIANGHE"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, hsk.Query(tt.query), "query %q", tt.query)
	}
}

func TestLongQuery(t *testing.T) {
	q := strings.Repeat("A", hanzime.Capacity+1)
	assert.Equal(t, strings.Repeat("A", hanzime.Capacity), hsk.Query(q))
}

func TestDictionaryInvariants(t *testing.T) {
	dict := hsk.Dictionary()
	require.NoError(t, dict.Validate())
	assert.Equal(t, hsk.Size, dict.Size())
	assert.LessOrEqual(t, dict.MaxChoices, hanzime.MaxChoices)
	for i := 1; i < len(dict.Keys); i++ {
		require.Less(t, dict.Keys[i-1], dict.Keys[i], "keys must be strictly increasing at %d", i)
	}
}

func TestGeneratedTablesAreCurrent(t *testing.T) {
	built, err := hanzime.BuildDictionary("vocab.tsv", hsk.Seed, vocab.NewReader(hsk.Vocabulary()))
	require.NoError(t, err)
	dict := hsk.Dictionary()
	assert.Equal(t, built.Keys, dict.Keys, "hsk_data.go is out of date, run 'go generate'")
	assert.Equal(t, built.Entries, dict.Entries, "hsk_data.go is out of date, run 'go generate'")
	assert.Equal(t, built.MaxPhraseLen, dict.MaxPhraseLen)
	assert.Equal(t, built.MaxChoices, dict.MaxChoices)
	assert.Equal(t, built.Fingerprint(), dict.Fingerprint())
}

func TestEveryWordIsReachable(t *testing.T) {
	reader := vocab.NewReader(hsk.Vocabulary())
	for {
		pinyin, hanzi, err := reader.Next()
		if err != nil {
			break
		}
		// with a choice digit, any word is reachable; try all of them
		found := false
		for _, suffix := range []string{"", "1", "2", "3"} {
			if strings.Contains(hsk.Query(pinyin+suffix), hanzi) {
				found = true
				break
			}
		}
		assert.True(t, found, "%q (%s) not reachable", pinyin, hanzi)
	}
}
