package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoStructuredOutput is returned when the reasoning loop terminates without
// committing to a valid ranked-ID list.
var ErrNoStructuredOutput = errors.New("reasoning loop produced no structured output")

// DocumentRanking is the structured output of the reasoning loop: document IDs
// in ranked order, most relevant first.
type DocumentRanking struct {
	DocIDs []string `json:"doc_ids"`
}

// parseDocumentRanking validates an LLM response against the DocumentRanking
// shape. Models occasionally wrap the JSON in code fences or prose, so the
// parser extracts the outermost JSON value before decoding. A bare JSON array
// of IDs is accepted as shorthand for {"doc_ids": [...]}.
func parseDocumentRanking(raw string) (*DocumentRanking, error) {
	payload := extractJSON(raw)
	if payload == "" {
		return nil, fmt.Errorf("%w: no JSON found in %q", ErrNoStructuredOutput, truncateForError(raw))
	}

	ranking := &DocumentRanking{}
	if strings.HasPrefix(payload, "[") {
		if err := json.Unmarshal([]byte(payload), &ranking.DocIDs); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoStructuredOutput, err)
		}
	} else {
		if err := json.Unmarshal([]byte(payload), ranking); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoStructuredOutput, err)
		}
	}

	if ranking.DocIDs == nil {
		return nil, fmt.Errorf("%w: missing doc_ids field", ErrNoStructuredOutput)
	}

	for _, id := range ranking.DocIDs {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: empty document id", ErrNoStructuredOutput)
		}
	}

	return ranking, nil
}

// extractJSON returns the outermost JSON object or array embedded in s.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)

	// Strip markdown code fences
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start, opener, closer := -1, byte('{'), byte('}')
	switch {
	case objStart >= 0 && (arrStart < 0 || objStart < arrStart):
		start = objStart
	case arrStart >= 0:
		start, opener, closer = arrStart, '[', ']'
	default:
		return ""
	}

	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		switch {
		case inString:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == opener:
			depth++
		case ch == closer:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}

func truncateForError(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
