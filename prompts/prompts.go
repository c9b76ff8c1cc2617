package prompts

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

func loadPrompt(templatePath string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// RenderRankingPrompt renders the system and user prompts for the document
// ranking task.
func RenderRankingPrompt(query string, topK int) (systemPrompt, userPrompt string, err error) {
	systemPrompt, err = loadPrompt("templates/rank_documents_system.md", nil)
	if err != nil {
		return "", "", err
	}

	userPrompt, err = loadPrompt("templates/rank_documents_user.md", struct {
		Query string
		TopK  int
	}{Query: query, TopK: topK})
	if err != nil {
		return "", "", err
	}

	return systemPrompt, userPrompt, nil
}

// RenderToolSelectionPrompt renders the per-turn system prompt used when the
// agent decides whether to invoke the search tool.
func RenderToolSelectionPrompt(turn int) (string, error) {
	return loadPrompt("templates/tool_selection_system.md", struct {
		Turn int
	}{Turn: turn})
}
