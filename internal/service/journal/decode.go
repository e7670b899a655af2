package journal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// decodeParsedData interprets the extraction service's raw text output as the
// structured schema. A decode failure means the model produced text that is
// not valid structured output; callers keep the offending raw text for
// diagnostics. No semantic validation happens here: an out-of-range calorie
// count is not a decode failure.
func decodeParsedData(raw string) (*domain.ParsedData, error) {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var data domain.ParsedData
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return nil, fmt.Errorf("unmarshal extraction output: %w", err)
	}

	return &data, nil
}

// extractJSON finds the first complete JSON object in a string. Models
// occasionally wrap the JSON in prose or markdown fences despite the prompt.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
