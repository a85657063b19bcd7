package domain

// WordCount is one (count, word) ranking pair.
type WordCount struct {
	Count int    `json:"count"`
	Word  string `json:"word"`
}

// Analysis is the aggregate summary computed over a query's result set.
//
// RankedWords and RankedHashtags are ordered by descending count, ties by
// descending lexicographic word — the order a reverse sort of (count, word)
// pairs produces.
type Analysis struct {
	RankedWords    []WordCount `json:"word_counts"`
	RankedHashtags []WordCount `json:"hashtags"`
	Authors        []string    `json:"users"`
	Keywords       string      `json:"keywords"`
}
