package retrieval

import "math"

// Index holds the TF-IDF representation of a fixed question corpus. It is
// built once per corpus snapshot and is read-only afterwards, so it can be
// shared across concurrent readers without locking.
type Index struct {
	tok     *Tokenizer
	idf     map[string]float64
	vectors []sparseVector
}

type sparseVector struct {
	weights map[string]float64
	norm    float64
}

// BuildIndex tokenizes every question, derives smoothed inverse document
// frequencies and stores one weighted sparse vector per question. The build
// is deterministic for a fixed corpus and tokenizer.
func BuildIndex(questions []string, tok *Tokenizer) *Index {
	if tok == nil {
		tok = NewTokenizer(true)
	}
	index := &Index{
		tok:     tok,
		idf:     make(map[string]float64),
		vectors: make([]sparseVector, 0, len(questions)),
	}

	tokenized := make([][]string, len(questions))
	df := make(map[string]int)
	for i, question := range questions {
		tokens := tok.Tokenize(question)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, term := range tokens {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	// Smoothed IDF keeps terms present in every document above zero.
	n := float64(len(questions))
	for term, count := range df {
		index.idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}

	for _, tokens := range tokenized {
		index.vectors = append(index.vectors, index.embed(tokens))
	}
	return index
}

// Size reports the number of indexed questions.
func (ix *Index) Size() int { return len(ix.vectors) }

// VocabularySize reports the number of distinct indexed terms.
func (ix *Index) VocabularySize() int { return len(ix.idf) }

// embed projects tokens into the IDF-weighted space. Terms outside the
// vocabulary carry no weight. Token lists without any known term produce a
// zero vector with norm 0.
func (ix *Index) embed(tokens []string) sparseVector {
	counts := make(map[string]int, len(tokens))
	total := 0
	for _, term := range tokens {
		if _, known := ix.idf[term]; !known {
			continue
		}
		counts[term]++
		total++
	}
	vec := sparseVector{weights: make(map[string]float64, len(counts))}
	if total == 0 {
		return vec
	}
	var sum float64
	for term, count := range counts {
		weight := float64(count) / float64(total) * ix.idf[term]
		vec.weights[term] = weight
		sum += weight * weight
	}
	vec.norm = math.Sqrt(sum)
	return vec
}

// cosine is defined as 0 whenever either vector has zero magnitude, so
// stop-word-only queries never divide by zero.
func cosine(a, b sparseVector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}
	outer, inner := a, b
	if len(b.weights) < len(a.weights) {
		outer, inner = b, a
	}
	var dot float64
	for term, weight := range outer.weights {
		if other, ok := inner.weights[term]; ok {
			dot += weight * other
		}
	}
	score := dot / (a.norm * b.norm)
	if score > 1 {
		score = 1
	}
	return score
}
