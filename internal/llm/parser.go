package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/nestegg/internal/service"
)

// cleanJSON strips markdown code fences and any chatter around the outermost JSON array.
func cleanJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start != -1 && end > start {
		s = s[start : end+1]
	}
	return s
}

// parseSuggestions decodes a model reply into suggestions, dropping untitled entries.
// A bare object is accepted as a single suggestion.
func parseSuggestions(raw string) ([]service.Suggestion, error) {
	content := cleanJSON(raw)

	var suggestions []service.Suggestion
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		var single service.Suggestion
		if objErr := json.Unmarshal([]byte(strings.TrimSpace(raw)), &single); objErr != nil {
			return nil, fmt.Errorf("failed to parse suggestions: %w", err)
		}
		suggestions = []service.Suggestion{single}
	}

	out := suggestions[:0]
	for _, s := range suggestions {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			continue
		}
		s.Description = strings.TrimSpace(s.Description)
		out = append(out, s)
	}
	return out, nil
}
