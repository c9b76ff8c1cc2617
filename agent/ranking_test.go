package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentRankingPlainObject(t *testing.T) {
	ranking, err := parseDocumentRanking(`{"doc_ids": ["MED-10", "MED-14", "MED-2"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"MED-10", "MED-14", "MED-2"}, ranking.DocIDs)
}

func TestParseDocumentRankingBareArray(t *testing.T) {
	ranking, err := parseDocumentRanking(`["MED-10", "MED-14"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"MED-10", "MED-14"}, ranking.DocIDs)
}

func TestParseDocumentRankingCodeFence(t *testing.T) {
	raw := "```json\n{\"doc_ids\": [\"MED-10\"]}\n```"
	ranking, err := parseDocumentRanking(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"MED-10"}, ranking.DocIDs)
}

func TestParseDocumentRankingProseWrapped(t *testing.T) {
	raw := `Based on the search results, here is the ranking: {"doc_ids": ["MED-10", "MED-14"]} as requested.`
	ranking, err := parseDocumentRanking(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"MED-10", "MED-14"}, ranking.DocIDs)
}

func TestParseDocumentRankingEmptyList(t *testing.T) {
	ranking, err := parseDocumentRanking(`{"doc_ids": []}`)
	require.NoError(t, err)
	assert.Empty(t, ranking.DocIDs)
}

func TestParseDocumentRankingInvalid(t *testing.T) {
	cases := []string{
		"",
		"no json here",
		`{"other_field": true}`,
		`{"doc_ids": [""]}`,
		`{"doc_ids": "MED-10"}`,
		`{"doc_ids": [1, 2]}`,
	}

	for _, raw := range cases {
		ranking, err := parseDocumentRanking(raw)
		assert.ErrorIs(t, err, ErrNoStructuredOutput, "input %q should fail", raw)
		assert.Nil(t, ranking)
	}
}

func TestExtractJSONNestedObjects(t *testing.T) {
	raw := `{"doc_ids": ["a"], "meta": {"nested": "}"}}`
	assert.Equal(t, raw, extractJSON(raw))
}

func TestExtractJSONStringsWithBrackets(t *testing.T) {
	raw := `["id-with-]-bracket"]`
	assert.Equal(t, raw, extractJSON(raw))
}
