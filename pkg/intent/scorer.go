package intent

const (
	keywordWeight = 2
	synonymWeight = 1

	// AcceptScore is the lowest score that selects an intent: one
	// keyword or two synonyms.
	AcceptScore = 2
)

// Score adds 2 for every keyword and 1 for every synonym of in found
// among tokens. Presence counts, repetition does not.
func Score(tokens []string, in Intent) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok] = struct{}{}
	}

	score := 0
	for _, kw := range in.Keywords {
		if _, ok := seen[kw]; ok {
			score += keywordWeight
		}
	}
	for _, syn := range in.Synonyms {
		if _, ok := seen[syn]; ok {
			score += synonymWeight
		}
	}

	return score
}
