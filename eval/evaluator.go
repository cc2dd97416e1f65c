// Package eval provides evaluation measures for ranked lists of documents.
package eval

import "github.com/hscells/trecresults"

// RelevanceGrade is the minimum judgment score a document must exceed to be
// considered relevant. With binary qrels the default of 0 treats a score of 1
// as relevant.
var RelevanceGrade int64

// Evaluator is an interface for evaluating a retrieved list of documents.
type Evaluator interface {
	Score(results *trecresults.ResultList, qrels trecresults.Qrels) float64
	Name() string
}

// relevant determines whether a document has a positive relevance judgment.
func relevant(qrels trecresults.Qrels, docID string) bool {
	qrel, ok := qrels[docID]
	return ok && qrel.Score > RelevanceGrade
}
