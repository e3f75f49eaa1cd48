package knowledge

// Entry is one immutable question/answer pair. Both fields are non-empty
// after a successful load.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Corpus is the ordered, load-once collection of FAQ entries. Order is
// irrelevant for matching but fixes the tie-break between equal scores.
type Corpus struct {
	Entries []Entry
	// Version carries the optional db_version field of the document form.
	Version string
}

// Len reports the number of entries.
func (c Corpus) Len() int { return len(c.Entries) }

// Questions returns the question texts in corpus order, ready for indexing.
func (c Corpus) Questions() []string {
	questions := make([]string, len(c.Entries))
	for i, entry := range c.Entries {
		questions[i] = entry.Question
	}
	return questions
}
