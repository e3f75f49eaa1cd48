package retrieval

import "sort"

// Match pairs a corpus position with its cosine similarity to the query.
type Match struct {
	Position int
	Score    float64
}

// Search embeds the query with the index tokenizer and ranks every indexed
// question by cosine similarity, highest first. Equal scores keep corpus
// order, so the first inserted entry wins ties. The call is pure: repeated
// searches with the same query return identical rankings.
func (ix *Index) Search(query string) []Match {
	if len(ix.vectors) == 0 {
		return nil
	}
	queryVec := ix.embed(ix.tok.Tokenize(query))
	matches := make([]Match, len(ix.vectors))
	for i, vec := range ix.vectors {
		matches[i] = Match{Position: i, Score: cosine(queryVec, vec)}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Best returns the highest ranked match, or false for an empty index.
func (ix *Index) Best(query string) (Match, bool) {
	matches := ix.Search(query)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
