package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderRankingPrompt(t *testing.T) {
	system, user, err := RenderRankingPrompt("calcium and bone health", 5)
	assert.NoError(t, err)

	assert.Contains(t, system, "biomedical document retrieval expert")
	assert.Contains(t, system, "doc_ids")
	assert.Contains(t, system, "Never invent document IDs")

	assert.Contains(t, user, "top 5")
	assert.Contains(t, user, "calcium and bone health")
}

func TestRenderToolSelectionPrompt(t *testing.T) {
	prompt, err := RenderToolSelectionPrompt(0)
	assert.NoError(t, err)
	assert.Contains(t, prompt, "turn 0")
	assert.Contains(t, prompt, "search")

	later, err := RenderToolSelectionPrompt(2)
	assert.NoError(t, err)
	assert.Contains(t, later, "turn 2")
	assert.NotEqual(t, prompt, later)
}
