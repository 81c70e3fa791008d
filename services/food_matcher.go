package services

import "strings"

// minTokenLen filters connective noise ("a", "of", "on") before matching.
const minTokenLen = 3

// FoodMatcher resolves free-text meal descriptions to catalog food names.
// It is a deliberately coarse keyword/substring heuristic, not NLP: good
// enough for "grilled chicken with rice", silent on anything it cannot place.
type FoodMatcher struct {
	catalog *FoodCatalog
}

func NewFoodMatcher(catalog *FoodCatalog) *FoodMatcher {
	return &FoodMatcher{catalog: catalog}
}

// Match lowercases the description, splits on whitespace, drops tokens
// shorter than minTokenLen, and resolves each remaining token to the first
// catalog entry whose name or category contains it as a substring. The
// catalog keeps its bundled order, so first-match is stable across runs.
// Results are deduplicated; an empty result is a normal outcome, not an
// error.
func (m *FoodMatcher) Match(description string) []string {
	fields := strings.Fields(strings.ToLower(description))
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var matched []string
	for _, token := range fields {
		token = strings.Trim(token, ".,;:!?()")
		if len(token) < minTokenLen {
			continue
		}
		for _, f := range m.catalog.Foods() {
			if strings.Contains(strings.ToLower(f.Name), token) ||
				strings.Contains(strings.ToLower(f.Category), token) {
				if _, dup := seen[f.Name]; !dup {
					seen[f.Name] = struct{}{}
					matched = append(matched, f.Name)
				}
				break // first catalog entry wins for this token
			}
		}
	}
	return matched
}
