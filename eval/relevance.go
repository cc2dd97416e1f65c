package eval

import "github.com/hscells/trecresults"

// Relevances encodes a ranked result list as a binary relevance sequence.
// Position i is 1 when the document ranked at i has a positive relevance
// judgment, and 0 otherwise. When limit is greater than zero the sequence is
// truncated to at most limit positions. Duplicate documents in the list are
// encoded as-is.
func Relevances(results *trecresults.ResultList, qrels trecresults.Qrels, limit int) []float64 {
	n := results.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	rels := make([]float64, n)
	for i := 0; i < n; i++ {
		if relevant(qrels, (*results)[i].DocId) {
			rels[i] = 1
		}
	}
	return rels
}
