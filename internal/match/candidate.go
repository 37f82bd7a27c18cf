package match

import "sort"

// Thresholds used when turning a ranking into suggestions.
const (
	// DefaultMinScore is the lowest similarity worth suggesting.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions caps the suggestion list.
	DefaultMaxSuggestions = 3
)

// Candidate is a known name scored against a query.
type Candidate struct {
	Name  string
	Score float64 // normalized Levenshtein similarity (0-1)

	// NormalizedName is kept for explanations.
	NormalizedName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every known name against query, best first.
func Rank(query string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:           name,
			Score:          NormalizedLevenshteinScore(query, name),
			NormalizedName: NormalizeIdent(name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to limit known names scoring at least minScore.
func Suggest(query string, known []string, minScore float64, limit int) []string {
	top := Rank(query, known).AboveThreshold(minScore).Top(limit)

	names := make([]string, 0, len(top))
	for _, c := range top {
		names = append(names, c.Name)
	}

	return names
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n < 0 || n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}
