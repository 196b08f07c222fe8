package travel

import "strings"

// ExtractJSON carves the candidate JSON document out of a chatty model reply
// by taking the span from the first '{' to the last '}'. The selection is
// intentionally not brace-balanced; downstream behavior depends on this exact
// rule. Text without such a span is returned unchanged.
func ExtractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end != -1 && end > start {
		return raw[start : end+1]
	}
	return raw
}
